package service

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/filologbot/filolog/internal/ledger"
	"github.com/filologbot/filolog/internal/morphology"
)

// Usage and rejection messages.
const (
	MsgAnalyzeUsage    = "❌ Пожалуйста, укажите слово для анализа:\n/analyze <слово>"
	MsgSpellCheckUsage = "❌ Пожалуйста, укажите текст для проверки:\n/spell_check <текст>"
	MsgExamplesUsage   = "❌ Пожалуйста, укажите слово:\n/examples <слово>"

	MsgExamplesUnavailable = "⚠️ Генерация примеров недоступна (нет API ключа)"

	MsgHistoryEmpty = "📭 История запросов пуста"
)

const StartText = `Привет! 👋 Я "Русский Филолог" — ваш ассистент по анализу текстов на русском языке!

Я умею:
✨ Разбирать слова по частям речи
✨ Проверять орфографию и грамматику
✨ Генерировать примеры предложений
✨ Хранить историю ваших запросов

Введите /help для справки по командам!
`

const HelpText = `Я ассистент по анализу русского языка! 📚

Доступные команды:

/start — начать работу
/help — справка
/analyze <слово> — морфологический анализ слова
/spell_check <текст> — проверка орфографии
/examples <слово> — примеры использования слова
/history — просмотр ваших запросов
/clear_history — удалить историю

Примеры использования:
/analyze книга
/spell_check Это написано корректна
/examples красивый
`

// historyPreviewLen caps the query text shown per history entry, in runes.
const historyPreviewLen = 40

// maxExamplesShown caps how many generated sentences are rendered.
const maxExamplesShown = 5

func RateLimitedMessage(ceiling int) string {
	return fmt.Sprintf("⚠️ Вы превысили лимит запросов (%d/мин). Повторите позже.", ceiling)
}

func WordTooLongMessage(max int) string {
	return fmt.Sprintf("❌ Слово слишком длинное (макс %d символов)", max)
}

func TextTooLongMessage(max int) string {
	return fmt.Sprintf("❌ Текст слишком длинный (макс %d символов)", max)
}

func HistoryClearedMessage(count int64) string {
	return fmt.Sprintf("✅ История очищена! Удалено %d записей.", count)
}

// FormatAnalysis renders the morphological report: normal form, part of
// speech, grammeme list and the six-case table in the fixed case order.
func FormatAnalysis(word string, a morphology.Analysis, variations map[string][]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📖 Анализ слова: %q\n\n", word)
	fmt.Fprintf(&b, "🔤 Нормальная форма: %s\n", a.NormalForm)
	fmt.Fprintf(&b, "📋 Часть речи: %s\n", a.POS)
	fmt.Fprintf(&b, "📝 Морфологические признаки: %s\n\n", a.Grammemes)

	b.WriteString("📚 Формы слова:\n")
	for _, tag := range morphology.CaseTags {
		fmt.Fprintf(&b, "• %s: %s\n", morphology.CaseNames[tag], strings.Join(variations[tag], ", "))
	}
	return b.String()
}

// FormatHistory renders the recent ledger records, newest first. Query
// texts longer than 40 runes are shortened with an ellipsis.
func FormatHistory(items []ledger.Query) string {
	if len(items) == 0 {
		return MsgHistoryEmpty
	}

	var b strings.Builder
	b.WriteString("📜 Ваша история запросов (последние 10):\n\n")
	for i, q := range items {
		preview := q.QueryText
		if utf8.RuneCountInString(preview) > historyPreviewLen {
			preview = string([]rune(preview)[:historyPreviewLen]) + "..."
		}
		fmt.Fprintf(&b, "%d. %s — %q\n   🕐 %s\n\n", i+1, q.Command, preview, q.CreatedAt.Format("02.01 15:04"))
	}
	return b.String()
}

// FormatExamples renders up to five generated sentences. Lines the model
// already numbered are kept as is, the rest get sequential numbers.
func FormatExamples(word string, examples []string) string {
	if len(examples) == 0 {
		return fmt.Sprintf("❌ Не удалось сгенерировать примеры для слова %q (возможно, проблема с токеном или API)", word)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📝 <b>Примеры использования слова %q:</b>\n\n", word)
	for i, example := range examples {
		if i >= maxExamplesShown {
			break
		}
		if r, _ := utf8.DecodeRuneInString(example); unicode.IsDigit(r) {
			fmt.Fprintf(&b, "%s\n", example)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, example)
		}
	}
	return b.String()
}
