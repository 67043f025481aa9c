package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// Actions understood by the import service.
const (
	ActionImport  = "import"
	ActionDisable = "disable"
)

// Command orders the import service to run an import or a deactivation for one partner.
type Command struct {
	Action    string `json:"action"`
	PartnerID int64  `json:"partnerId"`
	Reason    string `json:"reason,omitempty"`
}

// ImportCommander sends partner import commands.
type ImportCommander struct {
	sender Sender
}

// NewImportCommander returns new ImportCommander using provided sender for sending messages.
func NewImportCommander(sender Sender) ImportCommander {
	return ImportCommander{
		sender: sender,
	}
}

// SendImportCommand orders an import run for the partner.
func (c ImportCommander) SendImportCommand(ctx context.Context, partnerID int64) error {
	return c.send(ctx, Command{
		Action:    ActionImport,
		PartnerID: partnerID,
	})
}

// SendDisableCommand orders a deactivation of the partner. reason is recorded
// in the partner's statistics.
func (c ImportCommander) SendDisableCommand(ctx context.Context, partnerID int64, reason string) error {
	return c.send(ctx, Command{
		Action:    ActionDisable,
		PartnerID: partnerID,
		Reason:    reason,
	})
}

func (c ImportCommander) send(ctx context.Context, cmd Command) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
