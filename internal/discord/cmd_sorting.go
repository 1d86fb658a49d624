package discord

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mirefall/GrimoireBot_Go/internal/gamedata"
	"github.com/mirefall/GrimoireBot_Go/internal/sorting"
)

// Component customID prefixes for the sorting quiz
const (
	sortingAnswerPrefix = "sorting"
	sortingCancelPrefix = "sorting_cancel"
)

// SortingCommand returns the sorting quiz command definition and handler.
// The quiz runs through message component buttons; the chosen character name
// travels inside the button customIDs so the flow stays stateless bot-side.
func SortingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "sorting",
		Description: "Put on the Sorting Hat and join a house",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Your character's name (defaults to your Discord name)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		user := getInteractionUser(i)

		name := user.Username
		if options := getOptions(i); len(options) > 0 {
			name = options[0].StringValue()
		}

		question, err := client.StartQuiz(user.ID)
		if err != nil {
			if !deferResponse(s, i) {
				return
			}
			if strings.Contains(err.Error(), sorting.ErrMsgSessionExists) {
				respondError(s, i, "🎩 **The Hat is already on your head!**\nFinish your current quiz or cancel it.")
				return
			}
			slog.Error("Failed to start sorting quiz", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{questionEmbed(question)},
				Components: questionComponents(question, name),
			},
		}); err != nil {
			slog.Error("Failed to send quiz question", "error", err)
		}
	}

	return cmd, handler
}

// HandleSortingAnswer processes a quiz answer button press
func HandleSortingAnswer(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	user := getInteractionUser(i)

	parts := strings.SplitN(i.MessageComponentData().CustomID, ":", 3)
	if len(parts) < 3 {
		return
	}
	option, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	name := parts[2]

	question, result, err := client.AnswerQuiz(user.ID, option)
	if err != nil {
		slog.Error("Failed to answer quiz", "error", err)
		updateQuizMessage(s, i, createEmbed("🎩 The Sorting Hat", formatFriendlyError(err.Error()), colorWarning, FooterSortingHat), nil)
		return
	}

	if question != nil {
		updateQuizMessage(s, i, questionEmbed(question), questionComponents(question, name))
		return
	}

	// Quiz complete: register the character under the assigned house
	char, err := client.CreateCharacter(user.ID, user.Username, name, string(result.House))
	if err != nil {
		// An existing character keeps its house; still announce the verdict
		slog.Warn("Character creation after sorting failed", "error", err)
		updateQuizMessage(s, i, createEmbed(
			"🎩 The Hat Has Spoken",
			fmt.Sprintf("%s **%s!**\n\n%s", houseEmoji(result.House), result.House, formatFriendlyError(err.Error())),
			houseColor(result.House), FooterSortingHat), nil)
		return
	}

	details := gamedata.HouseDetails(char.House)
	desc := fmt.Sprintf("%s **%s!**\n\n%s\n\nWelcome, **%s**. Your wand: %s, %s, %d\".",
		houseEmoji(char.House), char.House, details.Description,
		char.Name, char.Wand.Wood, char.Wand.Core, char.Wand.Length)
	updateQuizMessage(s, i, createEmbed("🎩 The Hat Has Spoken", desc, houseColor(char.House), FooterSortingHat), nil)
}

// HandleSortingCancel abandons the quiz from its cancel button
func HandleSortingCancel(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	user := getInteractionUser(i)

	if err := client.CancelQuiz(user.ID); err != nil {
		slog.Error("Failed to cancel quiz", "error", err)
		updateQuizMessage(s, i, createEmbed("🎩 The Sorting Hat", formatFriendlyError(err.Error()), colorWarning, FooterSortingHat), nil)
		return
	}

	updateQuizMessage(s, i, createEmbed("🎩 Quiz Abandoned",
		"The Hat returns to its shelf, unimpressed. Come back with `/sorting`.",
		colorWarning, FooterSortingHat), nil)
}

// questionEmbed renders one quiz question
func questionEmbed(q *sorting.QuestionView) *discordgo.MessageEmbed {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**\n\n", q.Question)
	for idx, opt := range q.Options {
		fmt.Fprintf(&sb, "**%d.** %s\n", idx+1, opt)
	}

	embed := createEmbed(
		fmt.Sprintf("🎩 Question %d of %d", q.Number, q.Total),
		sb.String(), colorMagic, FooterSortingHat)
	return embed
}

// questionComponents builds the four answer buttons plus a cancel button.
// The character name rides in the customID so no bot-side state is needed.
func questionComponents(q *sorting.QuestionView, name string) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(q.Options))
	for idx := range q.Options {
		buttons = append(buttons, discordgo.Button{
			Label:    strconv.Itoa(idx + 1),
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("%s:%d:%s", sortingAnswerPrefix, idx, name),
		})
	}

	cancel := discordgo.Button{
		Label:    "Give up",
		Style:    discordgo.SecondaryButton,
		CustomID: fmt.Sprintf("%s:%s", sortingCancelPrefix, name),
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{cancel}},
	}
}

// updateQuizMessage edits the quiz message in place from a component press
func updateQuizMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	}); err != nil {
		slog.Error("Failed to update quiz message", "error", err)
	}
}
