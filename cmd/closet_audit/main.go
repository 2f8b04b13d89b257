package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Grendlee/fit-check/internal/config"
	"github.com/Grendlee/fit-check/internal/db"
	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/repository"
	"github.com/Grendlee/fit-check/internal/rubric"
	"github.com/Grendlee/fit-check/internal/service"
)

// closet_audit rankea el closet de una categoria contra cada rubric y
// muestra la distribucion de scores: sirve para detectar rubrics cuyo
// vocabulario no matchea nada del closet real.
func main() {
	ctx := context.Background()

	category := flag.String("category", "", "categoria de closet a auditar (style id)")
	flag.Parse()

	if *category == "" {
		flag.Usage()
		log.Fatal("missing -category")
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		log.Fatalf("db ping: %v", err)
	}

	closetRepo := repository.NewPgClosetRepository(pool)
	items, err := closetRepo.FindByCategory(ctx, *category)
	if err != nil {
		log.Fatalf("fetch closet: %v", err)
	}
	if len(items) == 0 {
		log.Fatalf("no closet items for category %q", *category)
	}

	fmt.Printf("Auditing %d items from category %q\n\n", len(items), *category)

	for _, key := range rubric.Keys() {
		r, err := rubric.Get(key)
		if err != nil {
			log.Fatalf("rubric %s: %v", key, err)
		}

		ranked := service.DefaultScoringEngine.RankItems(r, items)
		printSpread(key, ranked)
	}
}

func printSpread(key string, ranked []domain.RankedItem) {
	if len(ranked) == 0 {
		fmt.Printf("%-18s (no items)\n", key)
		return
	}

	best := ranked[0]
	worst := ranked[len(ranked)-1]
	scored := 0
	for _, it := range ranked {
		if it.Score != 0 {
			scored++
		}
	}

	fmt.Printf("%-18s best=%3d worst=%3d scored=%d/%d\n", key, best.Score, worst.Score, scored, len(ranked))
	if len(best.Reasons) > 0 {
		fmt.Printf("%-18s top item %s: %s\n", "", best.ID, strings.Join(best.Reasons, "; "))
	}
}
