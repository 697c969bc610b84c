package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finsync/internal/auth"
	"finsync/internal/config"
)

// mktoken mints a bearer token for local testing:
//
//	mktoken -user 7 -ttl 24h
func main() {
	_ = godotenv.Load()

	userID := flag.Int64("user", 0, "user id to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "mktoken: -user must be a positive id")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		fmt.Fprintln(os.Stderr, "mktoken: JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := auth.NewResolver([]byte(cfg.JWTSecret)).Mint(*userID, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mktoken: mint token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
