package extract_test

import (
	"testing"

	"qldf/core/extract"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const profileXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<profile>
	<steamID64>76561198000000001</steamID64>
	<steamID><![CDATA[RaceFan]]></steamID>
	<avatarFull><![CDATA[https://avatars.steamstatic.com/abc_full.jpg]]></avatarFull>
</profile>`

const profileHTML = `<html><body>
<div class="profile_header">
	<span class="actual_persona_name">RaceFan</span>
	<div class="playerAvatarAutoSizeInner"><img src="https://avatars.steamstatic.com/abc_full.jpg"></div>
</div>
</body></html>`

func TestProfileFromXML(t *testing.T) {
	doc := extract.NewDocument(profileXML)

	fields := extract.Profile(doc, extract.ProfileFields{}, zap.NewNop())
	assert.Equal(t, "RaceFan", fields.Name)
	assert.Equal(t, "https://avatars.steamstatic.com/abc_full.jpg", fields.AvatarURL)
}

func TestProfileFromHTMLFallback(t *testing.T) {
	doc := extract.NewDocument(profileHTML)

	fields := extract.Profile(doc, extract.ProfileFields{}, zap.NewNop())
	assert.Equal(t, "RaceFan", fields.Name)
	assert.Equal(t, "https://avatars.steamstatic.com/abc_full.jpg", fields.AvatarURL)
}

func TestProfileMissKeepsPreviousValues(t *testing.T) {
	doc := extract.NewDocument(`<html><body><p>profile is private</p></body></html>`)

	previous := extract.ProfileFields{
		Name:      "OldName",
		AvatarURL: "https://avatars.steamstatic.com/old.jpg",
	}
	fields := extract.Profile(doc, previous, zap.NewNop())
	assert.Equal(t, previous, fields)
}

func TestProfilePartialMiss(t *testing.T) {
	// Name present, avatar absent: only the avatar keeps its previous value.
	doc := extract.NewDocument(`<html><body><span class="actual_persona_name">NewName</span></body></html>`)

	previous := extract.ProfileFields{Name: "OldName", AvatarURL: "https://old.jpg"}
	fields := extract.Profile(doc, previous, zap.NewNop())
	assert.Equal(t, "NewName", fields.Name)
	assert.Equal(t, "https://old.jpg", fields.AvatarURL)
}
