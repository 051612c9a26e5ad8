// Command radarview-demo serves an interactive radar chart to browsers.
// The page forwards pointer events to the server, which owns the chart and
// answers with the scene to draw. With -tls, a self-signed certificate is
// generated at startup so phones on the LAN get a secure context.
package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/satindergrewal/radarview"
	"golang.org/x/time/rate"
)

//go:embed web
var webFiles embed.FS

func main() {
	configPath := flag.String("config", "", "chart configuration (JSON); default chart when empty")
	port := flag.Int("port", 8443, "listen port")
	useTLS := flag.Bool("tls", false, "serve HTTPS with a self-signed certificate")
	moveInterval := flag.Duration("move-interval", 8*time.Millisecond, "minimum spacing between applied pointer moves")
	debug := flag.Bool("debug", false, "log pointer handling at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	radarview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := radarview.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = radarview.LoadConfig(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	s, err := newServer(cfg, rate.Every(*moveInterval))
	if err != nil {
		log.Fatalf("chart: %v", err)
	}

	web, err := fs.Sub(webFiles, "web")
	if err != nil {
		log.Fatalf("web files: %v", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           s.routes(http.FileServer(http.FS(web))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lanIP := lanAddr()
	scheme := "http"
	if *useTLS {
		tlsConfig, err := demoTLSConfig([]string{"localhost", "127.0.0.1", lanIP}, 24*time.Hour)
		if err != nil {
			log.Fatalf("tls: %v", err)
		}
		srv.TLSConfig = tlsConfig
		scheme = "https"
	}

	fmt.Printf("radarview demo server\n")
	fmt.Printf("  axes:   %d\n", len(cfg.Labels))
	fmt.Printf("  listen: %s://%s:%d\n", scheme, lanIP, *port)
	if *useTLS {
		fmt.Printf("\nAccept the self-signed certificate warning when opening the URL.\n")
		// Empty cert/key paths: TLSConfig already carries the certificate.
		log.Fatal(srv.ListenAndServeTLS("", ""))
	}
	log.Fatal(srv.ListenAndServe())
}
