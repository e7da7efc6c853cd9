// Package locale maps integer locale identifiers (Windows LCIDs) onto
// BCP 47 language tags.
package locale

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"typeprompt/internal/domain"
)

// ID is a locale identifier (LCID), e.g. 1033 for en-US.
type ID int

// Well known identifiers.
const (
	EnglishUS ID = 1033
	FrenchFR  ID = 1036
	SpanishES ID = 3082
	SwedishSE ID = 1053
)

var lcids = map[ID]language.Tag{
	1025: language.MustParse("ar-SA"),
	1028: language.MustParse("zh-TW"),
	1029: language.MustParse("cs-CZ"),
	1030: language.MustParse("da-DK"),
	1031: language.MustParse("de-DE"),
	1032: language.MustParse("el-GR"),
	1033: language.MustParse("en-US"),
	1035: language.MustParse("fi-FI"),
	1036: language.MustParse("fr-FR"),
	1037: language.MustParse("he-IL"),
	1038: language.MustParse("hu-HU"),
	1040: language.MustParse("it-IT"),
	1041: language.MustParse("ja-JP"),
	1042: language.MustParse("ko-KR"),
	1043: language.MustParse("nl-NL"),
	1044: language.MustParse("nb-NO"),
	1045: language.MustParse("pl-PL"),
	1046: language.MustParse("pt-BR"),
	1049: language.MustParse("ru-RU"),
	1053: language.MustParse("sv-SE"),
	1055: language.MustParse("tr-TR"),
	1058: language.MustParse("uk-UA"),
	2052: language.MustParse("zh-CN"),
	2057: language.MustParse("en-GB"),
	2070: language.MustParse("pt-PT"),
	3079: language.MustParse("de-AT"),
	3082: language.MustParse("es-ES"),
	3084: language.MustParse("fr-CA"),
	4105: language.MustParse("en-CA"),
	2058: language.MustParse("es-MX"),
	2060: language.MustParse("fr-BE"),
	2067: language.MustParse("nl-BE"),
	4108: language.MustParse("fr-CH"),
	2055: language.MustParse("de-CH"),
	3081: language.MustParse("en-AU"),
}

var (
	byTag   = make(map[language.Tag]ID, len(lcids))
	tags    = make([]language.Tag, 0, len(lcids))
	matcher language.Matcher
)

func init() {
	ids := make([]ID, 0, len(lcids))
	for id := range lcids {
		ids = append(ids, id)
	}
	// Sorted so that matching does not depend on map order.
	slices.Sort(ids)
	for _, id := range ids {
		byTag[lcids[id]] = id
		tags = append(tags, lcids[id])
	}
	matcher = language.NewMatcher(tags)
}

// Lookup returns the language tag registered for id.
func Lookup(id ID) (language.Tag, error) {
	tag, ok := lcids[id]
	if !ok {
		return language.Und, fmt.Errorf("%w: %d", domain.ErrUnknownLocale, int(id))
	}
	return tag, nil
}

// FromTag returns the identifier of tag. Tags without an exact entry are
// matched to the closest known region variant ("fr" -> fr-FR).
func FromTag(tag language.Tag) (ID, error) {
	if id, ok := byTag[tag]; ok {
		return id, nil
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownLocale, tag)
	}
	return byTag[tags[idx]], nil
}

// Parse accepts either a numeric LCID ("1033") or a BCP 47 tag ("en-US", "en").
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", domain.ErrUnknownLocale)
	}
	if n, err := strconv.Atoi(s); err == nil {
		id := ID(n)
		if _, err := Lookup(id); err != nil {
			return 0, err
		}
		return id, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", domain.ErrUnknownLocale, s, err)
	}
	return FromTag(tag)
}

// Known reports whether id has a registered language tag.
func (id ID) Known() bool {
	_, ok := lcids[id]
	return ok
}

// Tag returns the language tag of id, or language.Und when unknown.
func (id ID) Tag() language.Tag {
	return lcids[id]
}

// String renders id as a BCP 47 tag, or as its number when unknown.
func (id ID) String() string {
	if tag, ok := lcids[id]; ok {
		return tag.String()
	}
	return strconv.Itoa(int(id))
}

// DisplayName returns the English name of the locale ("Spanish (Spain)").
func (id ID) DisplayName() string {
	tag, ok := lcids[id]
	if !ok {
		return strconv.Itoa(int(id))
	}
	return display.English.Tags().Name(tag)
}
