package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleEvents wraps its list under "events". The Yellow Turban Raid is the
// only record mentioning "ambush", and only in its source-derived tips.
const SampleEvents = `{
	"events": [
		{
			"id": "siege-of-luoyang",
			"name": "Siege of Luoyang",
			"description": "Capture the capital",
			"season": "S1",
			"rewards": {"name": "Gold Chest", "rarity": "Epic"},
			"bonus": {"type": "Attack", "value": "+10%", "scope": "siege"},
			"tips": ["Scout the walls first"],
			"time": {"duration": "3 days", "window": "Weekend"},
			"rules": ["No truce", "Max 5 marches"]
		},
		{
			"name": "Harvest Festival",
			"description": "Gather grain",
			"rewards": ["Food Pack", "Gold Coins"],
			"tips_text": "Farm in the morning",
			"has_rules": false,
			"duration": "1 day"
		},
		{
			"name": "Yellow Turban Raid",
			"description": "Defend the villages",
			"rewards_text": "Silver Key",
			"source": ["Hidden ambush at the river ford"]
		}
	]
}`

// SampleHeroes is a top-level list. Lu Bu has no image so the browser guesses one.
const SampleHeroes = `[
	{
		"slug": "lu-bu",
		"name": "Lu Bu",
		"season": "S1",
		"specialty": ["Cavalry", "Attack"],
		"talents": [{"name": "Fury", "type": "Passive", "description": "More damage"}],
		"skills": [{"name": "Warlord", "type": "Active", "description": "Hits hard"}]
	},
	{
		"name": "Cao Cao",
		"season": "S1",
		"class": "Infantry",
		"role": "Commander",
		"image": "images/cao-cao.png"
	},
	{
		"name": "Diao Chan",
		"season": "S2",
		"description": "Dancer of the court"
	}
]`

// SampleSkills wraps its list under "skills"
const SampleSkills = `{
	"skills": [
		{"slug": "iron-wall", "name": "Iron Wall", "type": "Passive", "probability": "30%", "effect": "Reduce damage"},
		{"slug": "fire-arrow", "title": "Fire Arrow", "type": "Active", "frequency": "Every 2 turns", "effect": "Burn the enemy"}
	]
}`

// SampleSpears has three slot1 skills so item navigation has a middle
const SampleSpears = `{
	"mount_type": "spears",
	"slot1": [
		{"id": "a1", "name": "Hoof Strike", "type": "Active", "description": "Kick the front line", "image": "spears/x.png"},
		{"id": "a2", "name": "Charge", "type": "Active", "description": "Run them down", "image": "spears/charge.png"},
		{"id": "a3", "name": "Trample", "type": "Active", "description": "Crush", "image": "spears/trample.png"}
	],
	"slot2": [
		{"id": "b1", "name": "Thick Hide", "type": "Passive", "description": "Tough skin", "image": "spears/hide.png"}
	]
}`

// SampleInfantry has an empty second slot
const SampleInfantry = `{
	"mount_type": "infantry",
	"slot1": [
		{"id": "i1", "name": "Shield Bash", "type": "Active", "description": "Stun", "image": "infantry/bash.png"}
	],
	"slot2": []
}`

// SampleArchers carries an image from the wrong mount type
const SampleArchers = `{
	"mount_type": "archers",
	"slot1": [
		{"id": "r1", "name": "Volley", "type": "Active", "description": "Arrows", "image": "spears/volley.png"}
	],
	"slot2": []
}`

// Fixture is a temporary catalog on disk
type Fixture struct {
	DataDir        string
	MountSkillsDir string
	AssetsDir      string
}

// NewFixture writes the sample documents and a partial set of assets.
// spears/trample.png and infantry/bash.png are deliberately missing.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	root := t.TempDir()
	f := &Fixture{
		DataDir:        filepath.Join(root, "data"),
		MountSkillsDir: filepath.Join(root, "data", "mount_skills"),
		AssetsDir:      filepath.Join(root, "assets"),
	}

	f.WriteData(t, "events.json", SampleEvents)
	f.WriteData(t, "heroes.json", SampleHeroes)
	f.WriteData(t, "skills.json", SampleSkills)
	f.WriteMount(t, "spears.json", SampleSpears)
	f.WriteMount(t, "infantry.json", SampleInfantry)
	f.WriteMount(t, "archers.json", SampleArchers)

	for _, asset := range []string{
		"mount_skills/spears/x.png",
		"mount_skills/spears/charge.png",
		"mount_skills/spears/hide.png",
		"images/lu-bu.webp",
		"images/cao-cao.png",
	} {
		WriteFile(t, filepath.Join(f.AssetsDir, asset), "img")
	}

	return f
}

// WriteData writes a document into the data directory
func (f *Fixture) WriteData(t *testing.T, name, content string) {
	t.Helper()
	WriteFile(t, filepath.Join(f.DataDir, name), content)
}

// WriteMount writes a document into the mount skills directory
func (f *Fixture) WriteMount(t *testing.T, name, content string) {
	t.Helper()
	WriteFile(t, filepath.Join(f.MountSkillsDir, name), content)
}

// RemoveData deletes a document from the data directory
func (f *Fixture) RemoveData(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, os.Remove(filepath.Join(f.DataDir, name)))
}

// WriteFile writes content to path, creating parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
