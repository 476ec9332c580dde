// Package main Go-Stop Ledger API
//
// Go-Stop Ledger is a settlement engine for the Korean card game Go-Stop.
// It records finished games as structured submissions, settles them into
// signed point deltas, and maintains editable running balances per player:
//
//  1. Settling each game from its point events: win award, hand sale,
//     loss multipliers and first-round-lock penalties.
//
//  2. Keeping player balances as a rebuildable projection of the game log,
//     with atomic reversal on edit and delete.
//
//     Schemes: http, https
//     Host: localhost:8080
//     BasePath: /api/v1
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - bearer
package main

import (
	"context"

	_ "github.com/tdubuke98/gostop/docs"
	"github.com/tdubuke98/gostop/internal/app"
)

// @title Go-Stop Ledger API Service
// @version 1.0
// @description Go-Stop Ledger records finished Go-Stop games, settles them into signed point deltas and maintains editable running balances per player.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
