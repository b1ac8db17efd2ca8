// productkey mints the registration key that lets an email sign up with a
// privileged role. It is how the first ADMIN account gets created.
//
// Usage:
//
//	PRODUCT_KEY_SECRET=... go run ./cmd/productkey -email ada@example.com -role ADMIN
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sethvargo/go-envconfig"

	"github.com/homefinder/realtor-api/internal/core/auth"
	"github.com/homefinder/realtor-api/internal/core/domain"
)

type env struct {
	ProductKeySecret string `env:"PRODUCT_KEY_SECRET,required"`
}

func main() {
	email := flag.String("email", "", "email the key is bound to")
	role := flag.String("role", string(domain.RoleAdmin), "role the key unlocks (REALTOR or ADMIN)")
	flag.Parse()

	if err := run(*email, *role); err != nil {
		fmt.Fprintf(os.Stderr, "productkey: %v\n", err)
		os.Exit(1)
	}
}

func run(email, rawRole string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("-email is required")
	}
	role, ok := domain.ParseRole(rawRole)
	if !ok {
		return fmt.Errorf("unknown role %q", rawRole)
	}

	var e env
	if err := envconfig.Process(context.Background(), &e); err != nil {
		return err
	}

	key, err := auth.NewProductKeyMinter(auth.NewPasswordHasher(), e.ProductKeySecret).Mint(email, role)
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}
