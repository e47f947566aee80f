// Package announce posts tournament results to a Discord channel.
package announce

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/logger"
)

// Sender delivers a finished embed
type Sender interface {
	Send(ctx context.Context, embed *discordgo.MessageEmbed) error
}

// Announcer turns rewards.distributed events into Discord embeds
type Announcer struct {
	sender Sender
	tag    language.Tag
}

// NewAnnouncer creates an Announcer that formats numbers for tag
func NewAnnouncer(sender Sender, tag language.Tag) *Announcer {
	return &Announcer{
		sender: sender,
		tag:    tag,
	}
}

// Subscribe registers the announcer on the bus
func (a *Announcer) Subscribe(bus event.Bus) {
	bus.Subscribe(event.RewardsDistributed, a.handleRewardsDistributed)
}

// handleRewardsDistributed never fails the publish; delivery problems are logged
func (a *Announcer) handleRewardsDistributed(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.RewardsDistributedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgAnnounceBadPayload, "error", err)
		return nil
	}

	if err := a.sender.Send(ctx, a.Embed(payload)); err != nil {
		log.Error(LogMsgAnnounceFailed, "tournament_id", payload.TournamentID, "error", err)
	}
	return nil
}

// Embed renders the podium and run totals
func (a *Announcer) Embed(p event.RewardsDistributedPayloadV1) *discordgo.MessageEmbed {
	// Printers and casers keep state and are built per call
	printer := message.NewPrinter(a.tag)
	title := cases.Title(a.tag)

	name := p.TournamentName
	if name == "" {
		name = printer.Sprintf("Tournament #%d", p.TournamentID)
	}

	description := printer.Sprintf("%d participants rewarded with %d XP and %d credits.",
		p.ParticipantCount, p.TotalXP, p.TotalCredits)
	if p.Forced {
		description += " Previous rewards were reconciled."
	}

	fields := make([]*discordgo.MessageEmbedField, 0, MaxPodiumFields)
	for _, award := range p.Awards {
		if award.Rank > MaxPodiumFields {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("#%d %s", award.Rank, title.String(strings.ReplaceAll(string(award.Tier), "_", " "))),
			Value:  printer.Sprintf("%s\n%d XP · %d credits", award.ParticipantID, award.XP, award.Credits),
			Inline: true,
		})
		if len(fields) == MaxPodiumFields {
			break
		}
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(EmbedTitleFormat, name),
		Description: description,
		Color:       EmbedColor,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: EmbedFooter + " · run " + p.RunID.String(),
		},
	}
}
