// Command admindict manages the Redis-backed admin word set directly,
// without going through the HTTP API, for operator scripts and cron jobs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"corrector/internal/admindict"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [add|remove|list] [word]\n", os.Args[0])
	}
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	})
	store := admindict.New(client, getenv("REDIS_ADMIN_KEY", ""))
	ctx := context.Background()

	switch cmd := args[0]; cmd {
	case "add":
		if len(args) != 2 {
			log.Fatal("add requires a word argument")
		}
		if err := store.Add(ctx, args[1]); err != nil {
			log.Fatalf("add: %v", err)
		}
	case "remove":
		if len(args) != 2 {
			log.Fatal("remove requires a word argument")
		}
		if err := store.Remove(ctx, args[1]); err != nil {
			log.Fatalf("remove: %v", err)
		}
	case "list":
		words, err := store.Words(ctx)
		if err != nil {
			log.Fatalf("list: %v", err)
		}
		for _, w := range words {
			fmt.Println(w)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
