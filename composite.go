package hxhead

// composite is implemented by elements that a Head never stores. On
// insertion they are replaced by their members, and keys in evicts that
// the members do not supply are removed from the Head.
type composite interface {
	Element
	members() []Element
	evicts() []string
}

// Page bundles the basic page metadata.
//
// Inserting a Page upserts title, charset and viewport, plus description,
// keywords, subject and rating when set. A description, keywords, subject
// or rating left over from an earlier Page (or inserted directly) is removed
// when the new Page does not set it.
type Page struct {
	Title       string
	Description string
	Keywords    Keywords
	Subject     string
	Rating      string
	// Charset defaults to DefaultCharset.
	Charset string
	// Viewport defaults to DefaultViewport.
	Viewport string
}

// Key is empty: a Page is expanded, never stored.
func (Page) Key() string  { return "" }
func (Page) Unique() bool { return false }
func (Page) element()     {}

func (p Page) members() []Element {
	out := []Element{
		Title{Text: p.Title},
		Charset(p.Charset),
		Viewport(p.Viewport),
	}
	if p.Description != "" {
		out = append(out, Description(p.Description))
	}
	if len(p.Keywords.Normalized()) > 0 {
		out = append(out, p.Keywords)
	}
	if p.Subject != "" {
		out = append(out, Subject(p.Subject))
	}
	if p.Rating != "" {
		out = append(out, Rating(p.Rating))
	}
	return out
}

func (Page) evicts() []string {
	return []string{KeyTitle, KeyDescription, KeyKeywords, KeySubject, KeyRating}
}

// HTML renders the members as they would appear in an empty Head.
func (p Page) HTML() string { return renderMembers(p.members()) }

// SocialMediaCard fills a TwitterCard and an OpenGraphWebsite from one set
// of fields. Card defaults to CardSummaryLargeImage.
type SocialMediaCard struct {
	Card        string
	Title       string
	Description string
	URL         Resolver
	Image       Resolver
	ImageAlt    string
	// Site and Creator are Twitter account handles.
	Site     string
	Creator  string
	SiteName string
	Locale   string
}

// Key is empty: a SocialMediaCard is expanded, never stored.
func (SocialMediaCard) Key() string  { return "" }
func (SocialMediaCard) Unique() bool { return false }
func (SocialMediaCard) element()     {}

func (s SocialMediaCard) members() []Element {
	card := s.Card
	if card == "" {
		card = CardSummaryLargeImage
	}
	return []Element{
		TwitterCard{
			Card:        card,
			Site:        s.Site,
			Creator:     s.Creator,
			Title:       s.Title,
			Description: s.Description,
			Image:       s.Image,
			ImageAlt:    s.ImageAlt,
			URL:         s.URL,
		},
		OpenGraphWebsite{
			Locale:      s.Locale,
			SiteName:    s.SiteName,
			Title:       s.Title,
			Description: s.Description,
			Image:       s.Image,
			ImageAlt:    s.ImageAlt,
			URL:         s.URL,
		},
	}
}

func (SocialMediaCard) evicts() []string {
	return []string{KeyTwitterCard, KeyOpenGraphWebsite}
}

// HTML renders the members as they would appear in an empty Head.
func (s SocialMediaCard) HTML() string { return renderMembers(s.members()) }

func renderMembers(els []Element) string {
	parts := make([]string, len(els))
	for i, el := range els {
		parts[i] = el.HTML()
	}
	return joinLines(parts...)
}
