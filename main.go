package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jandkbailey21/FDG-Discord-Bot/controller"
	"github.com/jandkbailey21/FDG-Discord-Bot/db"
	"github.com/jandkbailey21/FDG-Discord-Bot/notify"
	"github.com/jandkbailey21/FDG-Discord-Bot/pdga"
	"github.com/jandkbailey21/FDG-Discord-Bot/web"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	pdgaURL := os.Getenv("PDGA_POOL_URL")
	smsURL := os.Getenv("SMS_API_URL")
	smsToken := os.Getenv("SMS_API_TOKEN")
	smsFrom := os.Getenv("SMS_FROM_NUMBER")

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	pdgaClient, err := pdga.New(pdgaURL)
	if err != nil {
		log.Fatalf("error creating pdga client: %v", err)
	}

	dispatch := notify.NewSMSDispatcher(clock, smsURL, smsToken, smsFrom)

	ctrl, err := controller.New(clock, db, pdgaClient, dispatch)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the player pool from the PDGA every 24-hours
	wg.Add(1)
	go ctrl.RunPeriodicPlayerUpdates(24*time.Hour, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
