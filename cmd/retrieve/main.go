package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"astro-context-be/internal/bootstrap"
	"astro-context-be/internal/config"
	"astro-context-be/internal/entity"
	"astro-context-be/internal/service"

	"github.com/fatih/color"
)

// Debug tool: builds a reflection profile from flags and prints the
// retrieved context block.
func main() {
	sunSign := flag.String("sun", "Leo", "sun sign")
	moonSign := flag.String("moon", "", "moon sign (optional)")
	mood := flag.String("mood", "neutral", "mood: great, good, neutral, sad")
	actions := flag.String("actions", "", "comma-separated actions, e.g. meditated,worked")
	flag.Parse()

	cfg := config.Load()
	db := bootstrap.NewGormDB(cfg)
	container := bootstrap.NewContainer(db, cfg)
	defer container.Close()

	profile := &entity.ReflectionProfile{
		SunSign: *sunSign,
		Mood:    *mood,
	}
	if *moonSign != "" {
		profile.MoonSign = moonSign
	}
	if *actions != "" {
		profile.Actions = strings.Split(*actions, ",")
	}

	color.Yellow("Search query: %s\n", service.BuildSearchQuery(profile))

	result := container.RetrievalService.Query(context.Background(), profile)
	if result == "" {
		color.Red("No context retrieved (empty index or provider error)")
		return
	}

	fmt.Println(result)
}
