package extract

import (
	"go.uber.org/zap"
)

// ProfileFields are the player fields refreshed from a Steam profile page.
type ProfileFields struct {
	Name      string
	AvatarURL string
}

// Profile chains. The profile is fetched through the ?xml=1 variant, so the
// XML fields are the primary source; the HTML selectors cover the case where
// Steam answers with the plain profile page instead.
var (
	profileNameChain = Chain{
		Field: "player.name",
		Strategies: []Strategy{
			XMLField("steamID"),
			Text("span.actual_persona_name"),
		},
	}

	profileAvatarChain = Chain{
		Field: "player.avatar_url",
		Strategies: []Strategy{
			XMLField("avatarFull"),
			Attr("div.playerAvatarAutoSizeInner img", "src"),
		},
	}
)

// Profile resolves the player fields from a profile document, keeping the
// previous values on misses.
func Profile(doc *Document, previous ProfileFields, logger *zap.Logger) ProfileFields {
	return ProfileFields{
		Name:      profileNameChain.Resolve(doc, previous.Name, logger),
		AvatarURL: profileAvatarChain.Resolve(doc, previous.AvatarURL, logger),
	}
}
