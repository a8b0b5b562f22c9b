// Command scorekeeper-token issues a bearer token for the write routes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/DhavalSuthar-24/flagstats/pkg/token"
)

func main() {
	subject := flag.String("subject", "", "scorekeeper name recorded on every play")
	role := flag.String("role", token.RoleScorekeeper, "scorekeeper or admin")
	expiry := flag.Int("expiry", 720, "token lifetime in minutes")
	flag.Parse()

	secret := os.Getenv("SCOREKEEPER_JWT_SECRET")
	if secret == "" || *subject == "" {
		slog.Error("SCOREKEEPER_JWT_SECRET and -subject are required")
		os.Exit(2)
	}

	tok, err := token.GenerateJWT(*subject, *role, secret, *expiry)
	if err != nil {
		slog.Error("generate token", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(tok)
}
