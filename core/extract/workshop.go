package extract

import (
	"context"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"qldf/core/fetch"
	"qldf/core/utils"
)

// TextFetcher is the secondary-fetch capability the author resolution needs.
// *fetch.Client satisfies it.
type TextFetcher interface {
	Text(ctx context.Context, url string, params []fetch.Param) (string, error)
}

// WorkshopFields are the refreshable fields of a workshop item.
type WorkshopFields struct {
	Name          string
	AuthorSteamID string
	Description   string
	Date          time.Time
	Size          string
	NumComments   int
	Score         int
	NumScores     int
	PreviewURL    string
}

// Workshop detail page chains.
var (
	workshopNameChain = Chain{
		Field:      "workshop.name",
		Strategies: []Strategy{Text("div.workshopItemTitle")},
	}

	workshopPreviewChain = Chain{
		Field:      "workshop.preview_url",
		Strategies: []Strategy{Attr("img.workshopItemPreviewImageEnlargeable", "src")},
	}

	workshopSizeChain = Chain{
		Field: "workshop.size",
		Strategies: []Strategy{
			firstToken(statRight(0)),
		},
	}

	workshopCommentsChain = Chain{
		Field: "workshop.num_comments",
		Strategies: []Strategy{
			nth("span.tabCount", 1),
		},
	}
)

// Workshop resolves every refreshable field of a workshop item from its
// detail page. Fields whose chains miss keep their previous values; the
// rating count is the exception, where an absent rating block means zero.
func Workshop(ctx context.Context, doc *Document, previous WorkshopFields, fetcher TextFetcher, cache *VanityCache, logger *zap.Logger) WorkshopFields {
	fields := WorkshopFields{
		Name:       workshopNameChain.Resolve(doc, previous.Name, logger),
		PreviewURL: workshopPreviewChain.Resolve(doc, previous.PreviewURL, logger),
		Size:       workshopSizeChain.Resolve(doc, previous.Size, logger),
	}

	fields.AuthorSteamID = resolveAuthor(ctx, doc, previous.AuthorSteamID, fetcher, cache, logger)
	fields.Description = resolveDescription(doc, previous.Description, logger)
	fields.Date = resolveDate(doc, previous.Date, logger)
	fields.NumComments = utils.ParseCount(
		workshopCommentsChain.Resolve(doc, strconv.Itoa(previous.NumComments), logger),
		previous.NumComments)
	fields.Score, fields.NumScores = resolveRating(doc, previous.Score, logger)

	return fields
}

// resolveAuthor reads the author profile link. A /profiles/<id> path carries
// the steamID64 directly; a vanity path is resolved through a secondary fetch
// of <url>/?xml=1, memoized per job run. The secondary fetch is optional:
// its failure keeps the previous value and never fails the job.
func resolveAuthor(ctx context.Context, doc *Document, previous string, fetcher TextFetcher, cache *VanityCache, logger *zap.Logger) string {
	href, ok := Attr("a.friendBlockLinkOverlay", "href")(doc)
	if !ok {
		logger.Info("extraction miss, keeping previous value",
			zap.String("field", "workshop.author_steam_id"))
		return previous
	}

	parsed, err := url.Parse(href)
	if err != nil {
		logger.Info("unparseable author link, keeping previous value",
			zap.String("field", "workshop.author_steam_id"),
			zap.String("href", href))
		return previous
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) >= 2 && segments[0] == "profiles" {
		return segments[1]
	}

	if id, ok := cache.Lookup(href); ok {
		return id
	}

	raw, err := fetcher.Text(ctx, strings.TrimSuffix(href, "/")+"/?xml=1", nil)
	if err != nil {
		logger.Info("vanity resolution fetch failed, keeping previous value",
			zap.String("field", "workshop.author_steam_id"),
			zap.String("href", href),
			zap.Error(err))
		return previous
	}

	id, ok := XMLField("steamID64")(NewDocument(raw))
	if !ok {
		logger.Info("vanity profile carries no steamID64, keeping previous value",
			zap.String("field", "workshop.author_steam_id"),
			zap.String("href", href))
		return previous
	}
	cache.Store(href, id)
	return id
}

// resolveDescription extracts the item description with line breaks between
// block-level fragments, like the original markup reads.
func resolveDescription(doc *Document, previous string, logger *zap.Logger) string {
	tree, err := doc.HTML()
	if err != nil {
		return previous
	}
	sel := tree.Find("div.workshopItemDescription").First()
	if sel.Length() == 0 {
		logger.Info("extraction miss, keeping previous value",
			zap.String("field", "workshop.description"))
		return previous
	}
	var b strings.Builder
	for _, node := range sel.Nodes {
		flattenText(node, &b)
	}
	return strings.TrimSpace(b.String())
}

// flattenText walks the node tree appending text content, turning <br> and
// block element boundaries into newlines.
func flattenText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		b.WriteString("\n")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flattenText(c, b)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "div", "p", "li":
			b.WriteString("\n")
		}
	}
}

// resolveDate reads the publish date from the right-hand stats column and
// parses it against the known templates.
func resolveDate(doc *Document, previous time.Time, logger *zap.Logger) time.Time {
	text, ok := statRight(1)(doc)
	if !ok {
		logger.Info("extraction miss, keeping previous value",
			zap.String("field", "workshop.date"))
		return previous
	}
	date, ok := ParseWorkshopDate(text, time.Now().UTC())
	if !ok {
		logger.Info("unparseable publish date, keeping previous value",
			zap.String("field", "workshop.date"),
			zap.String("text", text))
		return previous
	}
	return date
}

// resolveRating reads the star score and the rating count. An absent rating
// block means the item has not been rated yet: the count is zero by
// definition, not a miss.
func resolveRating(doc *Document, previousScore int, logger *zap.Logger) (score, count int) {
	if text, ok := firstToken(Text("div.numRatings"))(doc); ok {
		count = utils.ParseCount(text, 0)
	}

	src, ok := Attr("div.fileRatingDetails img", "src")(doc)
	if !ok {
		logger.Info("extraction miss, keeping previous value",
			zap.String("field", "workshop.score"))
		return previousScore, count
	}
	return ScoreFromRatingImage(src), count
}

// ScoreFromRatingImage maps the digit embedded in the rating image filename
// to the stored score. The "not yet rated" image carries no digit above zero
// and maps to 0.
func ScoreFromRatingImage(src string) int {
	filename := path.Base(src)
	if i := strings.IndexAny(filename, "?#"); i >= 0 {
		filename = filename[:i]
	}
	score := 0
	for i := 0; i < 5; i++ {
		if strings.Contains(filename, strconv.Itoa(i)) {
			score = i
		}
	}
	return score
}

// WorkshopSearchItemID extracts the item id of the first result on a
// workshop search page: the title div's enclosing link carries the
// filedetails URL with the id in its query string.
func WorkshopSearchItemID(doc *Document) (string, bool) {
	tree, err := doc.HTML()
	if err != nil {
		return "", false
	}
	title := tree.Find("div.workshopItemTitle.ellipsis").First()
	if title.Length() == 0 {
		return "", false
	}
	href, ok := title.Closest("a").Attr("href")
	if !ok {
		// Some renderings place the link as a preceding sibling instead of
		// an ancestor; fall back to the first filedetails link on the page.
		href, ok = tree.Find(`a[href*="filedetails/?id="]`).First().Attr("href")
		if !ok {
			return "", false
		}
	}
	return itemIDFromURL(href)
}

func itemIDFromURL(href string) (string, bool) {
	parsed, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	id := parsed.Query().Get("id")
	if id == "" {
		return "", false
	}
	return id, true
}

// statRight selects the n-th div.detailsStatRight inside the right-hand
// stats container (0 = file size, 1 = publish date).
func statRight(n int) Strategy {
	return func(doc *Document) (string, bool) {
		tree, err := doc.HTML()
		if err != nil {
			return "", false
		}
		sel := tree.Find("div.detailsStatsContainerRight div.detailsStatRight").Eq(n)
		if sel.Length() == 0 {
			return "", false
		}
		value := strings.TrimSpace(sel.Text())
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// nth wraps a selector strategy picking the n-th match instead of the first.
func nth(selector string, n int) Strategy {
	return func(doc *Document) (string, bool) {
		tree, err := doc.HTML()
		if err != nil {
			return "", false
		}
		sel := tree.Find(selector).Eq(n)
		if sel.Length() == 0 {
			return "", false
		}
		value := strings.TrimSpace(sel.Text())
		if value == "" {
			return "", false
		}
		return value, true
	}
}

// firstToken wraps a strategy keeping only the first whitespace-separated
// token of its result ("12.676 MB" -> "12.676", "42 ratings" -> "42").
func firstToken(inner Strategy) Strategy {
	return func(doc *Document) (string, bool) {
		value, ok := inner(doc)
		if !ok {
			return "", false
		}
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return "", false
		}
		return fields[0], true
	}
}
