package main

import (
	"flag"
	"log"
	"os"

	"github.com/adrianap0607/Diorama/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	textureDir := flag.String("textures", "", "Directory with block textures (empty = procedural)")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, *textureDir)

	log.Printf("Diorama Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=diorama", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
