// Command token mints a bearer token for local calls to the fittracker API.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"example.com/fittracker/internal/auth"
	"example.com/fittracker/internal/config"
)

func main() {
	subject := flag.String("sub", "local-dev", "token subject")
	scopes := flag.String("scopes", auth.ScopeWorkoutsSummarize+" "+auth.ScopeWorkoutsRead, "space-separated scopes")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()
	token, err := auth.Issue(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer}, *subject, strings.Fields(*scopes), *ttl)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
