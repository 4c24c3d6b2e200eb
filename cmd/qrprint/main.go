// Command qrprint prints a salon's check-in QR code to the terminal.
//
// With -owner it looks the salon up in the database and prints its stored
// payload. With -offline the payload is encoded from QR_PUBLIC_ORIGIN alone.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/infra/db"
	"salon-loyalty/internal/infra/readstore"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/mdp/qrterminal/v3"
)

func main() {
	owner := flag.String("owner", "", "salon owner id")
	offline := flag.Bool("offline", false, "encode the payload without a database lookup")
	flag.Parse()

	ownerID, err := uuid.Parse(*owner)
	if err != nil {
		fail("invalid -owner", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fail("failed to load config", err)
	}

	payload, err := resolvePayload(cfg, ownerID, *offline)
	if err != nil {
		fail("failed to resolve payload", err)
	}

	qrterminal.GenerateHalfBlock(payload, qrterminal.M, os.Stdout)
	fmt.Println(payload)
}

func resolvePayload(cfg config.Config, ownerID uuid.UUID, offline bool) (string, error) {
	if offline {
		codec, err := qrcode.NewCodec(cfg.QR.PublicOrigin)
		if err != nil {
			return "", err
		}
		return codec.Encode(ownerID.String()), nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return "", err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	salon, err := readstore.NewSalonReadStore(sqlc.New(), pool).FindByOwner(ctx, ownerID)
	if err != nil {
		return "", err
	}
	return salon.QRCode, nil
}

func fail(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
