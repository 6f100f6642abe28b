// Package classify tags claims with named entities and taxonomy topics.
package classify

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/veraz-project/veraz/pkg/config"
	"github.com/veraz-project/veraz/pkg/llm"
)

// MinTopicConfidence drops low-confidence topic assignments.
const MinTopicConfidence = 0.5

// MaxTopicsPerClaim caps how many taxonomy topics one claim links to.
const MaxTopicsPerClaim = 3

// Entity is a canonicalized named entity mentioned by a claim.
type Entity struct {
	Name string `json:"name"`
	// Kind is person, organization, institution, or location.
	Kind string `json:"kind"`
}

// TopicAssignment is one taxonomy topic with the model's confidence.
type TopicAssignment struct {
	Slug       string  `json:"slug"`
	Confidence float64 `json:"confidence"`
}

// Result is the classification of one claim.
type Result struct {
	Entities []Entity          `json:"entities"`
	Topics   []TopicAssignment `json:"topics"`
}

const systemPromptTemplate = `Sos un clasificador de afirmaciones políticas en español.

Dada una afirmación, extraé:
1. Las entidades nombradas (personas, organizaciones, lugares), con su nombre completo canónico.
2. Los temas aplicables de esta lista cerrada de slugs, con tu confianza (0.0-1.0): %s

Respondé ÚNICAMENTE con JSON:
{"entities": [{"name": "...", "kind": "person|organization|institution|location"}], "topics": [{"slug": "...", "confidence": 0.0}]}`

// Classifier runs claim classification over an LLM provider.
type Classifier struct {
	provider llm.Provider
	taxonomy *config.Taxonomy
	aliases  map[string]string
	timeout  time.Duration
}

// New builds a classifier bound to the topic taxonomy.
func New(provider llm.Provider, taxonomy *config.Taxonomy, timeout time.Duration) *Classifier {
	return &Classifier{
		provider: provider,
		taxonomy: taxonomy,
		aliases:  defaultAliases(),
		timeout:  timeout,
	}
}

// Classify extracts entities and topics for a claim. Topics outside the
// taxonomy or below the confidence floor are dropped; entity names are
// canonicalized through the alias map.
func (c *Classifier) Classify(ctx context.Context, claimText string) (*Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	temperature := 0.1
	raw, err := c.provider.Complete(callCtx, llm.Request{
		System:      fmt.Sprintf(systemPromptTemplate, strings.Join(c.taxonomy.Slugs(), ", ")),
		User:        claimText,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	var parsed Result
	if err := llm.DecodeJSON(raw, &parsed); err != nil {
		return nil, fmt.Errorf("classification returned undecodable result: %w", err)
	}

	out := &Result{}
	seenEntities := make(map[string]bool)
	for _, e := range parsed.Entities {
		name := c.Canonicalize(e.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seenEntities[key] {
			continue
		}
		seenEntities[key] = true
		out.Entities = append(out.Entities, Entity{Name: name, Kind: normalizeKind(e.Kind)})
	}

	seenTopics := make(map[string]bool)
	for _, t := range parsed.Topics {
		slug := strings.ToLower(strings.TrimSpace(t.Slug))
		if !c.taxonomy.HasSlug(slug) || t.Confidence < MinTopicConfidence || seenTopics[slug] {
			continue
		}
		seenTopics[slug] = true
		out.Topics = append(out.Topics, TopicAssignment{Slug: slug, Confidence: t.Confidence})
	}
	sort.SliceStable(out.Topics, func(i, j int) bool {
		return out.Topics[i].Confidence > out.Topics[j].Confidence
	})
	if len(out.Topics) > MaxTopicsPerClaim {
		out.Topics = out.Topics[:MaxTopicsPerClaim]
	}

	return out, nil
}

// KnownEntities scans the claim for alias-table entities without a model
// call. The canonical names seed evidence retrieval before the full
// classification runs.
func (c *Classifier) KnownEntities(text string) []string {
	lower := strings.ToLower(text)

	aliases := make([]string, 0, len(c.aliases))
	for alias := range c.aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	seen := make(map[string]bool)
	var out []string
	for _, alias := range aliases {
		canonical := c.aliases[alias]
		if seen[canonical] || !containsWord(lower, alias) {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}

// containsWord reports whether phrase occurs in text on word boundaries,
// so "caba" never matches inside "acabar".
func containsWord(text, phrase string) bool {
	for start := 0; start <= len(text)-len(phrase); {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(phrase)

		before, _ := utf8.DecodeLastRuneInString(text[:idx])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		start = idx + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Canonicalize maps an entity surface form to its canonical name. Unknown
// names pass through cleaned up.
func (c *Classifier) Canonicalize(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	if canonical, ok := c.aliases[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

func normalizeKind(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "person", "persona":
		return "person"
	case "institution", "institución", "institucion":
		return "institution"
	case "location", "place", "lugar":
		return "location"
	default:
		return "organization"
	}
}

// defaultAliases maps common surface forms to canonical entity names.
// The model usually canonicalizes on its own; this catches the frequent
// abbreviations it leaves as-is.
func defaultAliases() map[string]string {
	return map[string]string{
		"bcra":              "Banco Central de la República Argentina",
		"banco central":     "Banco Central de la República Argentina",
		"indec":             "Instituto Nacional de Estadística y Censos",
		"anses":             "Administración Nacional de la Seguridad Social",
		"afip":              "Administración Federal de Ingresos Públicos",
		"csjn":              "Corte Suprema de Justicia de la Nación",
		"corte suprema":     "Corte Suprema de Justicia de la Nación",
		"caba":              "Ciudad Autónoma de Buenos Aires",
		"pba":               "Provincia de Buenos Aires",
		"casa rosada":       "Poder Ejecutivo Nacional",
		"gobierno nacional": "Poder Ejecutivo Nacional",
	}
}
