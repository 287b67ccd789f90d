package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/sixtosix/sixtosix-backend/usecases"
)

func NewServer(
	router *gin.Engine,
	conf Configuration,
	uc usecases.Usecases,
) *http.Server {
	addRoutes(router, conf, uc)

	// Add 5 seconds to the server timeouts so the handler-level timeout
	// middleware gets to answer first.
	maxTimeout := conf.DefaultTimeout + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
	}
}
