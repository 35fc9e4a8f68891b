package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/fieldkeeper/internal/devserver"
	"github.com/dmitrijs2005/fieldkeeper/internal/logging"
)

func main() {

	addr := flag.String("addr", ":8000", "listen address")
	otp := flag.String("otp", devserver.DefaultOTP, "OTP accepted by verify-otp")
	level := flag.String("l", "info", "log level")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := logging.New(os.Stdout, *level, "json")
	srv := devserver.New(devserver.Options{OTP: *otp, Logger: logger})

	if err := srv.ListenAndServe(ctx, *addr); err != nil {
		log.Fatalf("%v", err)
	}

}
