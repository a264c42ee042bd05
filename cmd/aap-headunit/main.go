// aap-headunit is a reference Android Auto Protocol head unit.
//
// This binary demonstrates a head unit that advertises sensor, video,
// input, audio, microphone, and media-playback-status channels and
// drives them through the version/TLS-handshake/running state machine
// against a single connected phone.
//
// It listens on a TCP socket in place of a real USB accessory endpoint
// (enumeration and the vendor accessory-mode switch are out of scope,
// see DESIGN.md) and accepts exactly one connection at a time.
//
// Usage:
//
//	aap-headunit [options]
//
// Options:
//
//	-listen  TCP address to listen on (default: 127.0.0.1:5288)
//	-make    Vehicle make advertised in service discovery
//	-model   Vehicle model advertised in service discovery
//	-year    Vehicle model year advertised in service discovery
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os/signal"
	"syscall"

	"github.com/aaphost/aapcore/examples/headunit"
	"github.com/aaphost/aapcore/pkg/identity"
	"github.com/aaphost/aapcore/pkg/session"
	"github.com/aaphost/aapcore/pkg/transport"
	"github.com/pion/logging"
)

func main() {
	opts := ParseFlags()

	certPEM, keyPEM, err := identity.GenerateSelfSigned(opts.HeadUnitModel)
	if err != nil {
		log.Fatalf("generate identity: %v", err)
	}

	ln, err := net.Listen("tcp", opts.Listen)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	log.Printf("%s", opts)
	log.Printf("waiting for a phone connection on %s", opts.Listen)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := acceptOne(ctx, ln)
	if err != nil {
		log.Fatalf("accept: %v", err)
	}
	defer conn.Close()
	log.Printf("phone connected from %s", conn.RemoteAddr())

	loggerFactory := logging.NewDefaultLoggerFactory()
	bulk := transport.New(transport.Config{Conn: conn, LoggerFactory: loggerFactory})

	device, err := headunit.NewDevice(headunit.Options{
		Identity: session.Identity{
			Make:                    opts.Make,
			Model:                   opts.Model,
			Year:                    opts.Year,
			HeadUnitMake:            opts.HeadUnitMake,
			HeadUnitModel:           opts.HeadUnitModel,
			HeadUnitSoftwareBuild:   opts.HeadUnitSoftwareBuild,
			HeadUnitSoftwareVersion: opts.HeadUnitSoftwareVersion,
		},
		CertPEM:       certPEM,
		KeyPEM:        keyPEM,
		Bulk:          bulk,
		LoggerFactory: loggerFactory,
	})
	if err != nil {
		log.Fatalf("build device: %v", err)
	}

	if err := device.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("session error: %v", err)
	}
	log.Println("shutting down")
}

// acceptOne blocks until a connection arrives or ctx is cancelled.
func acceptOne(ctx context.Context, ln net.Listener) (net.Conn, error) {
	type result struct {
		conn net.Conn
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		conn, err := ln.Accept()
		ch <- result{conn, err}
	}()
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("aap-headunit: %w", ctx.Err())
	case r := <-ch:
		return r.conn, r.err
	}
}
