package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/mockbackend"
)

func main() {
	addr := flag.String("addr", ":48080", "Listen address")
	base := flag.String("base", "/api-admin", "Admin API prefix")
	public := flag.String("public-url", "http://localhost:48080", "Origin used in presigned URLs")
	password := flag.String("password", os.Getenv("MOCK_BACKEND_PASSWORD"), "Accepted login password (default admin123)")

	flag.Parse()

	gin.SetMode(gin.ReleaseMode)
	srv := mockbackend.New(*public)
	if *password != "" {
		srv.Password = *password
	}

	fmt.Printf("Mock admin backend on %s%s (login password %q)\n", *addr, *base, srv.Password)
	hs := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(*base),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := hs.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
