package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"

	"lightning-sats-bot/internal/config"
	"lightning-sats-bot/internal/ledger"
	"lightning-sats-bot/internal/models"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/shopspring/decimal"
)

const (
	stateCaptcha         = "CAPTCHA"
	stateWithdrawAddress = "WITHDRAW_ADDRESS"
	stateContestLink     = "CONTEST_LINK"
)

// conversation is per-chat scratch state owned by the session; the ledger
// never reads it.
type conversation struct {
	State          string
	CaptchaAnswer  int
	WithdrawMethod string
	WithdrawAmount decimal.Decimal
	ContestType    string
}

type Bot struct {
	Instance *telego.Bot
	Engine   *ledger.Engine
	Config   *config.Config
	Sessions map[int64]*conversation
	StatesMu sync.RWMutex
}

func NewBot(token string, engine *ledger.Engine, cfg *config.Config) (*Bot, error) {
	tgBot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		Instance: tgBot,
		Engine:   engine,
		Config:   cfg,
		Sessions: make(map[int64]*conversation),
	}, nil
}

func (b *Bot) session(telegramID int64) *conversation {
	b.StatesMu.RLock()
	s := b.Sessions[telegramID]
	b.StatesMu.RUnlock()
	return s
}

func (b *Bot) setSession(telegramID int64, s *conversation) {
	b.StatesMu.Lock()
	if s == nil {
		delete(b.Sessions, telegramID)
	} else {
		b.Sessions[telegramID] = s
	}
	b.StatesMu.Unlock()
}

func (b *Bot) user(ctx context.Context, telegramID int64) (*models.User, error) {
	return b.Engine.UserByTelegramID(ctx, telegramID)
}

func (b *Bot) Start() {
	updates, _ := b.Instance.UpdatesViaLongPolling(context.Background(), nil)

	handler, _ := th.NewBotHandler(b.Instance, updates)

	// /start command
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		message := update.Message
		from := message.From

		// Deep-link referral code, if any
		args := ""
		if parts := strings.Split(message.Text, " "); len(parts) > 1 {
			args = parts[1]
		}

		_, err := b.user(ctx.Context(), from.ID)
		if errors.Is(err, ledger.ErrUserNotFound) {
			_, err = b.Engine.RegisterUser(ctx.Context(), from.ID, from.Username, from.FirstName, from.LastName, args)
		}
		if err != nil {
			log.Printf("Failed to register user %d: %v", from.ID, err)
			_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(message.Chat.ID), "Something went wrong, please try again later."))
			return nil
		}

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
			tu.ID(message.Chat.ID),
			"Hey! I will help you upgrade your earn money by watching ads ✌",
		))

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
			tu.ID(message.Chat.ID),
			"Current language 🇬🇧 English. Select language / Выбери язык",
		).WithReplyMarkup(languageKeyboard()))
		return nil
	}, th.CommandEqual("start"))

	// Language selection -> human verification
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		telegramID := callback.From.ID
		lang := strings.TrimPrefix(callback.Data, "lang_")

		user, err := b.user(ctx.Context(), telegramID)
		if err != nil {
			log.Printf("Failed to load user %d: %v", telegramID, err)
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
			return nil
		}
		if err := b.Engine.SetLanguage(ctx.Context(), user.ID, lang); err != nil {
			log.Printf("Failed to set language for user %d: %v", telegramID, err)
		}

		problem := newMathProblem()
		b.setSession(telegramID, &conversation{State: stateCaptcha, CaptchaAnswer: problem.Answer()})

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
			tu.ID(telegramID),
			fmt.Sprintf("To continue communication with me, please solve the task below 😉\n\n%s = ?", problem),
		))
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataPrefix("lang_"))

	// Channel subscription check
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		telegramID := callback.From.ID

		member, err := ctx.Bot().GetChatMember(ctx.Context(), &telego.GetChatMemberParams{
			ChatID: tu.ID(b.Config.ChannelID),
			UserID: telegramID,
		})
		if err != nil {
			log.Printf("Error checking subscription for %d: %v", telegramID, err)
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID).WithText("Error verifying subscription. Please try again.").WithShowAlert())
			return nil
		}

		status := member.MemberStatus()
		if status != telego.MemberStatusMember && status != telego.MemberStatusAdministrator && status != telego.MemberStatusCreator {
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID).WithText("Please subscribe to the channel first.").WithShowAlert())
			return nil
		}

		if user, err := b.user(ctx.Context(), telegramID); err == nil {
			if err := b.Engine.SetSubscribed(ctx.Context(), user.ID, true); err != nil {
				log.Printf("Failed to mark user %d subscribed: %v", telegramID, err)
			}
		}

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Thank you for subscribing! 🎉"))
		b.sendMainMenu(ctx, telegramID)
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataEqual("check_subscription"))

	// Daily streak claim
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		telegramID := callback.From.ID

		user, err := b.user(ctx.Context(), telegramID)
		if err != nil {
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
			return nil
		}

		bonus, err := b.Engine.ClaimStreak(ctx.Context(), user.ID)
		switch {
		case errors.Is(err, ledger.ErrAlreadyClaimedToday):
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID).WithText("You already claimed your streak today. Come back tomorrow!").WithShowAlert())
		case err != nil:
			log.Printf("Failed to claim streak for user %d: %v", telegramID, err)
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID).WithText("Something went wrong, please try again.").WithShowAlert())
		default:
			updated, _ := b.user(ctx.Context(), telegramID)
			streak := 0
			if updated != nil {
				streak = updated.Streak
			}
			_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
				tu.ID(telegramID),
				fmt.Sprintf("🔥 Streak day %d! Bonus $%s added to your pending earnings.", streak, bonus.StringFixed(5)),
			))
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		}
		return nil
	}, th.CallbackDataEqual("claim_streak"))

	// Withdrawal method menu
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		telegramID := callback.From.ID

		user, err := b.user(ctx.Context(), telegramID)
		if err != nil {
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
			return nil
		}

		msg := fmt.Sprintf("👤 My account→ 💰 money\nAvailable for withdrawal: $%s\nSelect Payment System", user.Balance.StringFixed(5))

		methods := b.Engine.Policy().Methods
		ids := make([]string, 0, len(methods))
		for id := range methods {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		var rows [][]telego.InlineKeyboardButton
		for _, id := range ids {
			if user.Balance.GreaterThanOrEqual(methods[id].MinAmount) {
				rows = append(rows, tu.InlineKeyboardRow(
					tu.InlineKeyboardButton(fmt.Sprintf("⭐ %s", methods[id].Name)).WithCallbackData("method_"+id),
				))
			}
		}
		rows = append(rows, tu.InlineKeyboardRow(tu.InlineKeyboardButton("🔙 Back").WithCallbackData("back_to_account")))

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), msg).WithReplyMarkup(tu.InlineKeyboard(rows...)))
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataEqual("withdraw_menu"))

	// Withdrawal method selected -> ask for address
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		telegramID := callback.From.ID
		methodID := strings.TrimPrefix(callback.Data, "method_")

		method, ok := b.Engine.Policy().Methods[methodID]
		if !ok {
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID).WithText("Unknown payment method.").WithShowAlert())
			return nil
		}

		user, err := b.user(ctx.Context(), telegramID)
		if err != nil {
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
			return nil
		}

		if user.Balance.LessThan(method.MinAmount) {
			msg := fmt.Sprintf("There are not enough funds on your balance. The minimum amount to withdraw to \"%s\" is %s %s", method.Name, method.MinAmount, method.Currency)
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID).WithText(msg).WithShowAlert())
			return nil
		}

		b.setSession(telegramID, &conversation{
			State:          stateWithdrawAddress,
			WithdrawMethod: methodID,
			WithdrawAmount: user.Balance,
		})

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), addressPrompt(methodID, method.Name)))
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataPrefix("method_"))

	// Referral link and stats
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		telegramID := callback.From.ID

		user, err := b.user(ctx.Context(), telegramID)
		if err != nil {
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
			return nil
		}

		stats, err := b.Engine.ReferralStats(ctx.Context(), user.ID)
		if err != nil {
			log.Printf("Failed to load referral stats for user %d: %v", telegramID, err)
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
			return nil
		}

		botUsername := "LightningSatsBot"
		if info, err := b.Instance.GetMe(ctx.Context()); err == nil {
			botUsername = info.Username
		}
		refLink := fmt.Sprintf("https://t.me/%s?start=%s", botUsername, user.ReferralCode)

		share := b.Engine.Policy().ReferralShare.Mul(decimal.NewFromInt(100))
		msg := fmt.Sprintf(`👥Total referrals: %d.
💪 Referrals who have watched at least one Ads: %d
🆕👥New referrals who joined in the last 30 days: %d
🆕💪New referrals who have joined in the last 30 days and have watched at least one Ad: %d
💸👥Your profit for the last 30 days, from all referrals: $%s
💸🆕Your profit from referrals who have joined within the last 30 days: $%s

You receive %s%% of every reward your referrals earn by watching ads.

🔗Your referral link: %s`,
			stats.TotalReferrals, stats.ActiveReferrals,
			stats.NewReferrals30, stats.NewActiveReferrals30,
			stats.Profit30.StringFixed(5), stats.NewProfit30.StringFixed(5),
			share, refLink)

		keyboard := tu.InlineKeyboard(
			tu.InlineKeyboardRow(tu.InlineKeyboardButton("🔙 Back").WithCallbackData("back_to_account")),
		)
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), msg).WithReplyMarkup(keyboard))
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataEqual("referral_link"))

	// Contest mission details -> confirm
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		contestType := strings.TrimPrefix(callback.Data, "contest_open_")

		msg, ok := contestMission(contestType)
		if !ok {
			_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID).WithText("Unknown contest type"))
			return nil
		}

		keyboard := tu.InlineKeyboard(
			tu.InlineKeyboardRow(tu.InlineKeyboardButton("✅ Confirm").WithCallbackData("contest_submit_" + contestType)),
		)
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(callback.From.ID), msg).WithReplyMarkup(keyboard))
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataPrefix("contest_open_"))

	// Contest confirmed -> wait for the link
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		telegramID := callback.From.ID
		contestType := strings.TrimPrefix(callback.Data, "contest_submit_")

		b.setSession(telegramID, &conversation{State: stateContestLink, ContestType: contestType})

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Send the link to your post so we can verify it."))
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataPrefix("contest_submit_"))

	// Back buttons
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		b.sendAccount(ctx, callback.From.ID)
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataEqual("back_to_account"))

	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		callback := update.CallbackQuery
		b.sendMainMenu(ctx, callback.From.ID)
		_ = ctx.Bot().AnswerCallbackQuery(ctx.Context(), tu.CallbackQuery(callback.ID))
		return nil
	}, th.CallbackDataEqual("back_to_main"))

	// Text input: conversation states first, then menu buttons
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		telegramID := update.Message.From.ID
		text := update.Message.Text

		if s := b.session(telegramID); s != nil {
			switch s.State {
			case stateCaptcha:
				b.handleCaptchaAnswer(ctx, telegramID, text, s)
				return nil
			case stateWithdrawAddress:
				b.handleWithdrawalAddress(ctx, telegramID, text, s)
				return nil
			case stateContestLink:
				b.handleContestLink(ctx, telegramID, text, s)
				return nil
			}
		}

		switch text {
		case "💰 Earnings":
			b.sendEarnings(ctx, telegramID)
		case "👤 Account":
			b.sendAccount(ctx, telegramID)
		case "⚙️ Settings":
			b.sendSettings(ctx, telegramID)
		case "🤩 Contest":
			b.sendContest(ctx, telegramID)
		case "🌏 Language":
			_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Select language:").WithReplyMarkup(languageKeyboard()))
		case "💬 Contact support":
			keyboard := tu.InlineKeyboard(
				tu.InlineKeyboardRow(tu.InlineKeyboardButton("📞 Contact via telegram").WithURL(b.Config.SupportLink)),
			)
			_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
				tu.ID(telegramID),
				"Need help? If you have any questions about lightning sats, the service operator, or cooperation, write to us",
			).WithReplyMarkup(keyboard))
		case "🔙 Back to Main Menu":
			b.sendMainMenu(ctx, telegramID)
		default:
			_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "I didn't understand that. Please use the menu buttons."))
		}
		return nil
	}, th.AnyMessageWithText())

	handler.Start()
}

func (b *Bot) handleCaptchaAnswer(ctx *th.Context, telegramID int64, text string, s *conversation) {
	answer, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Please enter a number."))
		return
	}
	if answer != s.CaptchaAnswer {
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Incorrect answer. Please try again."))
		return
	}

	b.setSession(telegramID, nil)

	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Well, let's go? 🏄"))

	keyboard := tu.InlineKeyboard(
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("🚀 Subscribe").WithURL(b.Config.ChannelLink)),
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("✅ I'm subscribed").WithCallbackData("check_subscription")),
	)
	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
		tu.ID(telegramID),
		"😉 Make sure you subscribe to our channel before you get started",
	).WithReplyMarkup(keyboard))
}

func (b *Bot) handleWithdrawalAddress(ctx *th.Context, telegramID int64, text string, s *conversation) {
	if !validateAddress(s.WithdrawMethod, text) {
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Invalid address format. Please check and try again."))
		return
	}

	b.setSession(telegramID, nil)

	user, err := b.user(ctx.Context(), telegramID)
	if err != nil {
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Something went wrong, please try again later."))
		return
	}

	_, err = b.Engine.CreateWithdrawal(ctx.Context(), user.ID, s.WithdrawMethod, s.WithdrawAmount, strings.TrimSpace(text))
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Your balance has changed and is no longer enough for this withdrawal."))
	case err != nil:
		log.Printf("Failed to create withdrawal for user %d: %v", telegramID, err)
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Failed to create the payout request. Please try again later."))
	default:
		method := b.Engine.Policy().Methods[s.WithdrawMethod]
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
			tu.ID(telegramID),
			fmt.Sprintf("%s\nThe payout request has been successfully created and will be processed within an hour", commissionText(method)),
		))
	}

	b.sendAccount(ctx, telegramID)
}

func (b *Bot) handleContestLink(ctx *th.Context, telegramID int64, text string, s *conversation) {
	if !validateContestLink(text) {
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Please enter a valid URL."))
		return
	}

	b.setSession(telegramID, nil)

	user, err := b.user(ctx.Context(), telegramID)
	if err != nil {
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Something went wrong, please try again later."))
		return
	}

	if err := b.Engine.SubmitContestEntry(ctx.Context(), user.ID, s.ContestType, strings.TrimSpace(text)); err != nil {
		log.Printf("Failed to save contest submission for user %d: %v", telegramID, err)
		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Failed to save your submission. Please try again later."))
		return
	}

	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "🕐 We are checking your participation, please wait!"))
}

func (b *Bot) sendMainMenu(ctx *th.Context, telegramID int64) {
	keyboard := tu.Keyboard(
		tu.KeyboardRow(tu.KeyboardButton("💰 Earnings"), tu.KeyboardButton("👤 Account")),
		tu.KeyboardRow(tu.KeyboardButton("⚙️ Settings"), tu.KeyboardButton("🤩 Contest")),
	).WithResizeKeyboard()

	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Main menu:").WithReplyMarkup(keyboard))
}

func (b *Bot) sendEarnings(ctx *th.Context, telegramID int64) {
	stats, err := b.Engine.UserStats(ctx.Context(), telegramID)
	if err != nil {
		return
	}

	policy := b.Engine.Policy()
	msg := fmt.Sprintf(`🎬 Watch to Earn
🚀 Daily progress Goal: %d Ads
👀 Watched Today: %d/ %d
💰 Per Ad Reward: $%s
📅 Streak multiply: %sX (%sX added daily for consecutive claims)
✨ Today You Earned: $%s
🤫Pro Tip: Keep your Daily Streak alive to multiply your rewards!`,
		policy.DailyGoal,
		stats.User.WatchedToday, policy.DailyGoal,
		policy.PerAdReward.StringFixed(5),
		stats.User.StreakMultiplier.StringFixed(3), policy.StreakBonusRate.StringFixed(3),
		stats.User.EarnedToday.StringFixed(5))

	keyboard := tu.InlineKeyboard(
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("💰 Get Paid Now").WithWebApp(&telego.WebAppInfo{URL: b.Config.WebAppURL})),
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("📅 Claim Daily Streak").WithCallbackData("claim_streak")),
	)
	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), msg).WithReplyMarkup(keyboard))
}

func (b *Bot) sendAccount(ctx *th.Context, telegramID int64) {
	stats, err := b.Engine.UserStats(ctx.Context(), telegramID)
	if err != nil {
		return
	}

	msg := fmt.Sprintf(`👤 My account
🆔 Telegram ID: %d
📅 You are already with us: %d days
💵 Balance: $%s
💰 Earned today: $%s
💰 Earned total: $%s
👥 Referrals: %d`,
		stats.User.TelegramID,
		stats.DaysWithUs,
		stats.User.Balance.StringFixed(5),
		stats.User.EarnedToday.StringFixed(5),
		stats.User.EarnedTotal.StringFixed(5),
		stats.ReferralCount)

	keyboard := tu.InlineKeyboard(
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("💰 Withdraw").WithCallbackData("withdraw_menu")),
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("👥 Referral link").WithCallbackData("referral_link")),
	)
	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), msg).WithReplyMarkup(keyboard))
}

func (b *Bot) sendSettings(ctx *th.Context, telegramID int64) {
	keyboard := tu.Keyboard(
		tu.KeyboardRow(tu.KeyboardButton("🌏 Language")),
		tu.KeyboardRow(tu.KeyboardButton("💬 Contact support")),
		tu.KeyboardRow(tu.KeyboardButton("🔙 Back to Main Menu")),
	).WithResizeKeyboard()
	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), "Settings:").WithReplyMarkup(keyboard))
}

func (b *Bot) sendContest(ctx *th.Context, telegramID int64) {
	msg := `Tell Others about Lightning Sats and get up to 10,000,000 Sats for each video

Create content: Make a fan video about the lightning sats app for YouTube short, instagram reel, or Tiktok.
Include your ID or invite link: Add your ID or invite link in the video description
Get your invite link in the profile section
Send the link: Once your video reaches 100+ views, send us the link
Earn rewards: The more views your video gets, the better your reward.

Complete the tasks below to claim your $SATS:`

	keyboard := tu.InlineKeyboard(
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("⚡ Create and share memes - 50,000 $SATS").WithCallbackData("contest_open_meme")),
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("🎥 YouTube Bonanza - 500,000 $SATS").WithCallbackData("contest_open_youtube")),
		tu.InlineKeyboardRow(tu.InlineKeyboardButton("🔙 Back").WithCallbackData("back_to_main")),
	)
	_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(tu.ID(telegramID), msg).WithReplyMarkup(keyboard))
}

func languageKeyboard() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🇷🇺 русский").WithCallbackData("lang_ru"),
			tu.InlineKeyboardButton("🇪🇦 español").WithCallbackData("lang_es"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🇵🇹 Português").WithCallbackData("lang_pt"),
			tu.InlineKeyboardButton("🇫🇷 français").WithCallbackData("lang_fr"),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🇺🇿 o'zbek").WithCallbackData("lang_uz"),
		),
	)
}

func addressPrompt(methodID, name string) string {
	if methodID == "telegram_stars" {
		return "Enter your username or your friends (Example: @username)"
	}
	return fmt.Sprintf("Enter the %s address.", name)
}

func commissionText(method ledger.PaymentMethod) string {
	text := fmt.Sprintf("Commission %s: ", method.Name)
	if method.CommissionPercent.IsPositive() {
		text += fmt.Sprintf("%s%%", method.CommissionPercent)
	}
	if method.CommissionFixed.IsPositive() {
		if method.CommissionPercent.IsPositive() {
			text += " + "
		}
		text += fmt.Sprintf("%s %s", method.CommissionFixed, method.Currency)
	}
	return text
}

func contestMission(contestType string) (string, bool) {
	switch contestType {
	case "meme":
		return `🔥 Airdrop - Create & Share Memes
👉🏻 Mission: Craft a meme about $BEES and share it in Telegram crypto groups. Get creative and showcase your humor!
❓ Share your meme in groups and press « ✅ Confirm ».`, true
	case "youtube":
		return `🔥 Airdrop - YouTube Bonanza
👉🏻 Mission: Talk about $BEES and ClickBeeBot in YouTube videos/podcasts.
❓ Post your video on YouTube and press « ✅ Confirm ».`, true
	default:
		return "", false
	}
}
