package app

import (
	"log"
	"os"

	"github.com/tdubuke98/gostop/internal/http/middleware"
)

func (a *application) InitErrorHandler() *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log.New(os.Stdout, "", log.LstdFlags))
}
