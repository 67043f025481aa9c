package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shlomaa/distributors-import/internal/platform"
	"github.com/shlomaa/distributors-import/internal/platform/models"
	"github.com/shlomaa/distributors-import/internal/platform/rabbitmq"
	"github.com/shlomaa/distributors-import/pkg/v1/commander"
)

// Importer runs feed imports for partners.
type Importer interface {
	Import(ctx context.Context, partner *models.Partner) error
}

// Deactivator disables partners.
type Deactivator interface {
	Disable(ctx context.Context, partner *models.Partner, reason string) (*models.ImportStatistics, error)
}

// Partners loads partner records.
type Partners interface {
	FindPartner(ctx context.Context, partnerID int64) (*models.Partner, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq         *rabbitmq.RabbitMQ
	importer    Importer
	deactivator Deactivator
	partners    Partners
	logger      *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(
	rmq *rabbitmq.RabbitMQ,
	importer Importer,
	deactivator Deactivator,
	partners Partners,
	logger *zerolog.Logger,
) *RMQHandler {
	return &RMQHandler{
		rmq:         rmq,
		importer:    importer,
		deactivator: deactivator,
		partners:    partners,
		logger:      logger,
	}
}

// Start starts consuming and handling import commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, h.handleMessage)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func (h *RMQHandler) handleMessage(ctx context.Context, message []byte) error {
	cmd, err := decodeMessage(message)
	if err != nil {
		return err
	}

	partner, err := h.partners.FindPartner(ctx, cmd.PartnerID)
	if err != nil {
		return fmt.Errorf("can't load partner %d: %w", cmd.PartnerID, err)
	}
	if partner == nil {
		return fmt.Errorf("%w: %d", platform.ErrPartnerNotFound, cmd.PartnerID)
	}

	switch cmd.Action {
	case commander.ActionImport:
		h.logger.Debug().
			Int64("partnerId", cmd.PartnerID).
			Msg("import command received")
		if err := h.importer.Import(ctx, partner); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
	case commander.ActionDisable:
		h.logger.Debug().
			Int64("partnerId", cmd.PartnerID).
			Msg("disable command received")
		if _, err := h.deactivator.Disable(ctx, partner, cmd.Reason); err != nil {
			return fmt.Errorf("deactivation failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown command action %q", cmd.Action)
	}

	return nil
}

func decodeMessage(msg []byte) (*commander.Command, error) {
	var cmd commander.Command
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode command: %w", err)
	}

	return &cmd, err
}
