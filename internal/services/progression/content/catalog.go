// Package content holds the SRD catalogue the progression service validates
// selections against: classes, subclasses, domains, and domain cards.
package content

import (
	"sort"

	"github.com/louisbranch/hearthbound/internal/services/progression/domain/daggerheart"
)

// Class is an SRD character class with its two granted domains.
type Class struct {
	ID         string
	Name       string
	Domains    [2]string
	Subclasses []string
}

// Card is a domain card as published in the SRD.
type Card struct {
	ID     string
	Name   string
	Domain string
	Level  int
	Type   string
	Recall int
}

var classes = []Class{
	{ID: "bard", Name: "Bard", Domains: [2]string{"grace", "codex"}, Subclasses: []string{"troubadour", "wordsmith"}},
	{ID: "druid", Name: "Druid", Domains: [2]string{"sage", "arcana"}, Subclasses: []string{"warden-of-the-elements", "warden-of-renewal"}},
	{ID: "guardian", Name: "Guardian", Domains: [2]string{"valor", "blade"}, Subclasses: []string{"stalwart", "vengeance"}},
	{ID: "ranger", Name: "Ranger", Domains: [2]string{"bone", "sage"}, Subclasses: []string{"beastbound", "wayfinder"}},
	{ID: "rogue", Name: "Rogue", Domains: [2]string{"midnight", "grace"}, Subclasses: []string{"nightwalker", "syndicate"}},
	{ID: "seraph", Name: "Seraph", Domains: [2]string{"splendor", "valor"}, Subclasses: []string{"divine-wielder", "winged-sentinel"}},
	{ID: "sorcerer", Name: "Sorcerer", Domains: [2]string{"arcana", "midnight"}, Subclasses: []string{"elemental-origin", "primal-origin"}},
	{ID: "warrior", Name: "Warrior", Domains: [2]string{"blade", "bone"}, Subclasses: []string{"call-of-the-brave", "call-of-the-slayer"}},
	{ID: "wizard", Name: "Wizard", Domains: [2]string{"codex", "splendor"}, Subclasses: []string{"school-of-knowledge", "school-of-war"}},
}

// Catalog is an immutable in-memory view over the SRD data. It satisfies the
// domain package's catalogue contract.
type Catalog struct {
	classesByID map[string]Class
	cardsByID   map[string]Card
	cards       []Card
}

// NewCatalog indexes the embedded SRD data.
func NewCatalog() *Catalog {
	c := &Catalog{
		classesByID: make(map[string]Class, len(classes)),
		cardsByID:   make(map[string]Card, len(cards)),
		cards:       append([]Card(nil), cards...),
	}
	for _, class := range classes {
		c.classesByID[class.ID] = class
	}
	sort.Slice(c.cards, func(i, j int) bool {
		if c.cards[i].Domain != c.cards[j].Domain {
			return c.cards[i].Domain < c.cards[j].Domain
		}
		if c.cards[i].Level != c.cards[j].Level {
			return c.cards[i].Level < c.cards[j].Level
		}
		return c.cards[i].Name < c.cards[j].Name
	})
	for _, card := range c.cards {
		c.cardsByID[card.ID] = card
	}
	return c
}

// Classes returns every SRD class, in declaration order.
func (c *Catalog) Classes() []Class {
	out := make([]Class, 0, len(classes))
	out = append(out, classes...)
	return out
}

// Class looks up a class by ID.
func (c *Catalog) Class(id string) (Class, bool) {
	class, ok := c.classesByID[id]
	return class, ok
}

// ClassDomains returns the two domains granted by a class.
func (c *Catalog) ClassDomains(classID string) ([]string, bool) {
	class, ok := c.classesByID[classID]
	if !ok {
		return nil, false
	}
	return []string{class.Domains[0], class.Domains[1]}, true
}

// Subclasses returns the subclass IDs available to a class.
func (c *Catalog) Subclasses(classID string) ([]string, bool) {
	class, ok := c.classesByID[classID]
	if !ok {
		return nil, false
	}
	return append([]string(nil), class.Subclasses...), true
}

// Card looks up a domain card and projects it into the shape the level-up
// rules consume.
func (c *Catalog) Card(id string) (daggerheart.CardInfo, bool) {
	card, ok := c.cardsByID[id]
	if !ok {
		return daggerheart.CardInfo{}, false
	}
	return daggerheart.CardInfo{ID: card.ID, Domain: card.Domain, Level: card.Level}, true
}

// CardDetails returns the full card record.
func (c *Catalog) CardDetails(id string) (Card, bool) {
	card, ok := c.cardsByID[id]
	return card, ok
}

// Cards returns every card sorted by domain, level, then name.
func (c *Catalog) Cards() []Card {
	return append([]Card(nil), c.cards...)
}

// CardsForDomains returns every card belonging to one of the given domains,
// keeping the catalogue sort order.
func (c *Catalog) CardsForDomains(domains []string) []Card {
	allowed := make(map[string]bool, len(domains))
	for _, domain := range domains {
		allowed[domain] = true
	}
	out := make([]Card, 0)
	for _, card := range c.cards {
		if allowed[card.Domain] {
			out = append(out, card)
		}
	}
	return out
}
