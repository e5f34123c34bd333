// Package i18n fournit les messages affichés à l'utilisateur et le
// formatage des prix selon la langue négociée.
package i18n

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported liste les langues disponibles ; la première sert de repli.
var Supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
	language.French,
}

var (
	matcher = language.NewMatcher(Supported)
	cat     = buildCatalog()
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))
	for _, e := range entries {
		// SetString n'échoue que sur un tag ou un message mal formé.
		_ = b.SetString(language.BrazilianPortuguese, e.key, e.pt)
		_ = b.SetString(language.English, e.key, e.en)
		_ = b.SetString(language.French, e.key, e.fr)
	}
	return b
}

// Translator traduit les clés de message pour une langue donnée.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

func New(tag language.Tag) Translator {
	return Translator{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Parse renvoie la langue supportée la plus proche de s, ou le repli.
func Parse(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Negotiate choisit la langue à partir d'un en-tête Accept-Language.
func Negotiate(acceptLanguage string, fallback language.Tag) Translator {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return New(fallback)
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return New(fallback)
	}
	return New(Supported[idx])
}

func (t Translator) Tag() language.Tag {
	return t.tag
}

// Lang renvoie le code BCP 47 (pour l'attribut lang du HTML).
func (t Translator) Lang() string {
	return t.tag.String()
}

// T renvoie le message de la clé, formaté avec args.
func (t Translator) T(key string, args ...interface{}) string {
	return t.p.Sprintf(key, args...)
}

// Price arrondit au centime et formate en reais selon la langue.
func (t Translator) Price(d decimal.Decimal) string {
	return t.p.Sprintf("R$ %.2f", d.Round(2).InexactFloat64())
}
