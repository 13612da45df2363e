package content

// cards is the SRD domain card listing. IDs are stable slugs of the form
// domain-level-name.
var cards = []Card{
	// Arcana
	{ID: "arcana-1-rune-ward", Name: "Rune Ward", Domain: "arcana", Level: 1, Type: "spell", Recall: 0},
	{ID: "arcana-1-unleash-chaos", Name: "Unleash Chaos", Domain: "arcana", Level: 1, Type: "spell", Recall: 1},
	{ID: "arcana-1-wall-walk", Name: "Wall Walk", Domain: "arcana", Level: 1, Type: "spell", Recall: 1},
	{ID: "arcana-2-cinder-grasp", Name: "Cinder Grasp", Domain: "arcana", Level: 2, Type: "spell", Recall: 1},
	{ID: "arcana-2-floating-eye", Name: "Floating Eye", Domain: "arcana", Level: 2, Type: "spell", Recall: 0},
	{ID: "arcana-3-counterspell", Name: "Counterspell", Domain: "arcana", Level: 3, Type: "spell", Recall: 2},
	{ID: "arcana-4-premonition", Name: "Premonition", Domain: "arcana", Level: 4, Type: "spell", Recall: 2},
	{ID: "arcana-5-rift-walker", Name: "Rift Walker", Domain: "arcana", Level: 5, Type: "spell", Recall: 2},
	{ID: "arcana-6-telekinesis", Name: "Telekinesis", Domain: "arcana", Level: 6, Type: "spell", Recall: 2},
	{ID: "arcana-7-arcana-touched", Name: "Arcana-Touched", Domain: "arcana", Level: 7, Type: "ability", Recall: 2},
	{ID: "arcana-8-arcane-reflection", Name: "Arcane Reflection", Domain: "arcana", Level: 8, Type: "spell", Recall: 3},
	{ID: "arcana-9-sensory-projection", Name: "Sensory Projection", Domain: "arcana", Level: 9, Type: "spell", Recall: 2},
	{ID: "arcana-10-falling-sky", Name: "Falling Sky", Domain: "arcana", Level: 10, Type: "spell", Recall: 4},

	// Blade
	{ID: "blade-1-get-back-up", Name: "Get Back Up", Domain: "blade", Level: 1, Type: "ability", Recall: 1},
	{ID: "blade-1-not-good-enough", Name: "Not Good Enough", Domain: "blade", Level: 1, Type: "ability", Recall: 1},
	{ID: "blade-1-whirlwind", Name: "Whirlwind", Domain: "blade", Level: 1, Type: "ability", Recall: 0},
	{ID: "blade-2-a-soldiers-bond", Name: "A Soldier's Bond", Domain: "blade", Level: 2, Type: "ability", Recall: 1},
	{ID: "blade-2-reckless", Name: "Reckless", Domain: "blade", Level: 2, Type: "ability", Recall: 1},
	{ID: "blade-3-scramble", Name: "Scramble", Domain: "blade", Level: 3, Type: "ability", Recall: 1},
	{ID: "blade-3-versatile-fighter", Name: "Versatile Fighter", Domain: "blade", Level: 3, Type: "ability", Recall: 1},
	{ID: "blade-4-deadly-focus", Name: "Deadly Focus", Domain: "blade", Level: 4, Type: "ability", Recall: 2},
	{ID: "blade-4-fortified-armor", Name: "Fortified Armor", Domain: "blade", Level: 4, Type: "ability", Recall: 1},
	{ID: "blade-5-champions-edge", Name: "Champion's Edge", Domain: "blade", Level: 5, Type: "ability", Recall: 2},
	{ID: "blade-5-vitality", Name: "Vitality", Domain: "blade", Level: 5, Type: "ability", Recall: 0},
	{ID: "blade-6-battle-hardened", Name: "Battle-Hardened", Domain: "blade", Level: 6, Type: "ability", Recall: 2},
	{ID: "blade-6-rage-up", Name: "Rage Up", Domain: "blade", Level: 6, Type: "ability", Recall: 2},
	{ID: "blade-7-battle-cry", Name: "Battle Cry", Domain: "blade", Level: 7, Type: "ability", Recall: 2},
	{ID: "blade-7-glancing-blow", Name: "Glancing Blow", Domain: "blade", Level: 7, Type: "ability", Recall: 2},
	{ID: "blade-8-frenzy", Name: "Frenzy", Domain: "blade", Level: 8, Type: "ability", Recall: 3},
	{ID: "blade-8-gore-and-glory", Name: "Gore and Glory", Domain: "blade", Level: 8, Type: "ability", Recall: 2},
	{ID: "blade-9-battle-monster", Name: "Battle Monster", Domain: "blade", Level: 9, Type: "ability", Recall: 3},
	{ID: "blade-9-reapers-strike", Name: "Reaper's Strike", Domain: "blade", Level: 9, Type: "ability", Recall: 3},
	{ID: "blade-10-gladiator", Name: "Gladiator", Domain: "blade", Level: 10, Type: "ability", Recall: 3},
	{ID: "blade-10-onslaught", Name: "Onslaught", Domain: "blade", Level: 10, Type: "ability", Recall: 4},

	// Bone
	{ID: "bone-1-deft-maneuvers", Name: "Deft Maneuvers", Domain: "bone", Level: 1, Type: "ability", Recall: 0},
	{ID: "bone-1-i-see-it-coming", Name: "I See It Coming", Domain: "bone", Level: 1, Type: "ability", Recall: 1},
	{ID: "bone-1-untouchable", Name: "Untouchable", Domain: "bone", Level: 1, Type: "ability", Recall: 1},
	{ID: "bone-2-ferocity", Name: "Ferocity", Domain: "bone", Level: 2, Type: "ability", Recall: 2},
	{ID: "bone-2-strategic-approach", Name: "Strategic Approach", Domain: "bone", Level: 2, Type: "ability", Recall: 1},
	{ID: "bone-3-brace", Name: "Brace", Domain: "bone", Level: 3, Type: "ability", Recall: 1},
	{ID: "bone-3-tactician", Name: "Tactician", Domain: "bone", Level: 3, Type: "ability", Recall: 2},
	{ID: "bone-4-boost", Name: "Boost", Domain: "bone", Level: 4, Type: "ability", Recall: 1},
	{ID: "bone-4-redirect", Name: "Redirect", Domain: "bone", Level: 4, Type: "ability", Recall: 2},
	{ID: "bone-5-know-thy-enemy", Name: "Know Thy Enemy", Domain: "bone", Level: 5, Type: "ability", Recall: 2},
	{ID: "bone-5-signature-move", Name: "Signature Move", Domain: "bone", Level: 5, Type: "ability", Recall: 2},
	{ID: "bone-6-full-surge", Name: "Full Surge", Domain: "bone", Level: 6, Type: "ability", Recall: 3},
	{ID: "bone-6-rapid-riposte", Name: "Rapid Riposte", Domain: "bone", Level: 6, Type: "ability", Recall: 1},
	{ID: "bone-7-bone-touched", Name: "Bone-Touched", Domain: "bone", Level: 7, Type: "ability", Recall: 2},
	{ID: "bone-7-cruel-precision", Name: "Cruel Precision", Domain: "bone", Level: 7, Type: "ability", Recall: 2},
	{ID: "bone-8-breaking-blow", Name: "Breaking Blow", Domain: "bone", Level: 8, Type: "ability", Recall: 3},
	{ID: "bone-8-tumbling-strike", Name: "Tumbling Strike", Domain: "bone", Level: 8, Type: "ability", Recall: 2},
	{ID: "bone-9-suggestion", Name: "Suggestion", Domain: "bone", Level: 9, Type: "ability", Recall: 3},
	{ID: "bone-9-wrangle", Name: "Wrangle", Domain: "bone", Level: 9, Type: "ability", Recall: 3},
	{ID: "bone-10-deathrun", Name: "Deathrun", Domain: "bone", Level: 10, Type: "ability", Recall: 4},
	{ID: "bone-10-swift-step", Name: "Swift Step", Domain: "bone", Level: 10, Type: "ability", Recall: 3},

	// Codex
	{ID: "codex-1-book-of-ava", Name: "Book of Ava", Domain: "codex", Level: 1, Type: "grimoire", Recall: 2},
	{ID: "codex-1-book-of-illiat", Name: "Book of Illiat", Domain: "codex", Level: 1, Type: "grimoire", Recall: 2},
	{ID: "codex-1-book-of-tyfar", Name: "Book of Tyfar", Domain: "codex", Level: 1, Type: "grimoire", Recall: 2},
	{ID: "codex-2-book-of-sitil", Name: "Book of Sitil", Domain: "codex", Level: 2, Type: "grimoire", Recall: 2},
	{ID: "codex-2-book-of-vagras", Name: "Book of Vagras", Domain: "codex", Level: 2, Type: "grimoire", Recall: 2},
	{ID: "codex-3-book-of-korvax", Name: "Book of Korvax", Domain: "codex", Level: 3, Type: "grimoire", Recall: 2},
	{ID: "codex-4-book-of-exota", Name: "Book of Exota", Domain: "codex", Level: 4, Type: "grimoire", Recall: 3},
	{ID: "codex-5-book-of-grynn", Name: "Book of Grynn", Domain: "codex", Level: 5, Type: "grimoire", Recall: 3},
	{ID: "codex-6-manifest-wall", Name: "Manifest Wall", Domain: "codex", Level: 6, Type: "spell", Recall: 2},
	{ID: "codex-7-codex-touched", Name: "Codex-Touched", Domain: "codex", Level: 7, Type: "ability", Recall: 2},
	{ID: "codex-8-book-of-ronin", Name: "Book of Ronin", Domain: "codex", Level: 8, Type: "grimoire", Recall: 3},
	{ID: "codex-9-transcendent-union", Name: "Transcendent Union", Domain: "codex", Level: 9, Type: "spell", Recall: 3},
	{ID: "codex-10-book-of-homet", Name: "Book of Homet", Domain: "codex", Level: 10, Type: "grimoire", Recall: 4},

	// Grace
	{ID: "grace-1-deft-deceiver", Name: "Deft Deceiver", Domain: "grace", Level: 1, Type: "spell", Recall: 0},
	{ID: "grace-1-enrapture", Name: "Enrapture", Domain: "grace", Level: 1, Type: "spell", Recall: 1},
	{ID: "grace-1-inspirational-words", Name: "Inspirational Words", Domain: "grace", Level: 1, Type: "ability", Recall: 1},
	{ID: "grace-2-tell-no-lies", Name: "Tell No Lies", Domain: "grace", Level: 2, Type: "spell", Recall: 1},
	{ID: "grace-2-troublemaker", Name: "Troublemaker", Domain: "grace", Level: 2, Type: "ability", Recall: 2},
	{ID: "grace-3-hypnotic-shimmer", Name: "Hypnotic Shimmer", Domain: "grace", Level: 3, Type: "spell", Recall: 2},
	{ID: "grace-4-invisibility", Name: "Invisibility", Domain: "grace", Level: 4, Type: "spell", Recall: 2},
	{ID: "grace-5-share-the-burden", Name: "Share the Burden", Domain: "grace", Level: 5, Type: "ability", Recall: 1},
	{ID: "grace-6-grace-touched", Name: "Grace-Touched", Domain: "grace", Level: 6, Type: "ability", Recall: 2},
	{ID: "grace-7-endless-charisma", Name: "Endless Charisma", Domain: "grace", Level: 7, Type: "ability", Recall: 2},
	{ID: "grace-8-never-upstaged", Name: "Never Upstaged", Domain: "grace", Level: 8, Type: "ability", Recall: 2},
	{ID: "grace-9-encore", Name: "Encore", Domain: "grace", Level: 9, Type: "spell", Recall: 3},
	{ID: "grace-10-notorious", Name: "Notorious", Domain: "grace", Level: 10, Type: "ability", Recall: 3},

	// Midnight
	{ID: "midnight-1-pick-and-pull", Name: "Pick and Pull", Domain: "midnight", Level: 1, Type: "ability", Recall: 0},
	{ID: "midnight-1-rain-of-blades", Name: "Rain of Blades", Domain: "midnight", Level: 1, Type: "spell", Recall: 1},
	{ID: "midnight-1-uncanny-disguise", Name: "Uncanny Disguise", Domain: "midnight", Level: 1, Type: "spell", Recall: 1},
	{ID: "midnight-2-midnight-spirit", Name: "Midnight Spirit", Domain: "midnight", Level: 2, Type: "spell", Recall: 1},
	{ID: "midnight-2-shadowbind", Name: "Shadowbind", Domain: "midnight", Level: 2, Type: "spell", Recall: 1},
	{ID: "midnight-3-chokehold", Name: "Chokehold", Domain: "midnight", Level: 3, Type: "ability", Recall: 1},
	{ID: "midnight-4-glyph-of-nightfall", Name: "Glyph of Nightfall", Domain: "midnight", Level: 4, Type: "spell", Recall: 2},
	{ID: "midnight-5-hush", Name: "Hush", Domain: "midnight", Level: 5, Type: "spell", Recall: 2},
	{ID: "midnight-6-phantom-retreat", Name: "Phantom Retreat", Domain: "midnight", Level: 6, Type: "spell", Recall: 2},
	{ID: "midnight-7-midnight-touched", Name: "Midnight-Touched", Domain: "midnight", Level: 7, Type: "ability", Recall: 2},
	{ID: "midnight-8-stealth-expertise", Name: "Stealth Expertise", Domain: "midnight", Level: 8, Type: "ability", Recall: 2},
	{ID: "midnight-9-twilight-toll", Name: "Twilight Toll", Domain: "midnight", Level: 9, Type: "ability", Recall: 3},
	{ID: "midnight-10-eclipse", Name: "Eclipse", Domain: "midnight", Level: 10, Type: "spell", Recall: 4},

	// Sage
	{ID: "sage-1-gifted-tracker", Name: "Gifted Tracker", Domain: "sage", Level: 1, Type: "ability", Recall: 0},
	{ID: "sage-1-natural-familiar", Name: "Natural Familiar", Domain: "sage", Level: 1, Type: "spell", Recall: 1},
	{ID: "sage-1-vicious-entangle", Name: "Vicious Entangle", Domain: "sage", Level: 1, Type: "spell", Recall: 1},
	{ID: "sage-2-conjure-swarm", Name: "Conjure Swarm", Domain: "sage", Level: 2, Type: "spell", Recall: 1},
	{ID: "sage-2-natural-protection", Name: "Natural Protection", Domain: "sage", Level: 2, Type: "spell", Recall: 2},
	{ID: "sage-3-corrosive-projectile", Name: "Corrosive Projectile", Domain: "sage", Level: 3, Type: "spell", Recall: 1},
	{ID: "sage-4-healing-field", Name: "Healing Field", Domain: "sage", Level: 4, Type: "spell", Recall: 3},
	{ID: "sage-5-thorn-skin", Name: "Thorn Skin", Domain: "sage", Level: 5, Type: "spell", Recall: 2},
	{ID: "sage-6-sage-touched", Name: "Sage-Touched", Domain: "sage", Level: 6, Type: "ability", Recall: 2},
	{ID: "sage-7-wild-fortress", Name: "Wild Fortress", Domain: "sage", Level: 7, Type: "spell", Recall: 2},
	{ID: "sage-8-forest-sprites", Name: "Forest Sprites", Domain: "sage", Level: 8, Type: "spell", Recall: 3},
	{ID: "sage-9-plant-dominion", Name: "Plant Dominion", Domain: "sage", Level: 9, Type: "spell", Recall: 3},
	{ID: "sage-10-tempest", Name: "Tempest", Domain: "sage", Level: 10, Type: "spell", Recall: 4},

	// Splendor
	{ID: "splendor-1-bolt-beacon", Name: "Bolt Beacon", Domain: "splendor", Level: 1, Type: "spell", Recall: 1},
	{ID: "splendor-1-mending-touch", Name: "Mending Touch", Domain: "splendor", Level: 1, Type: "spell", Recall: 1},
	{ID: "splendor-1-reassurance", Name: "Reassurance", Domain: "splendor", Level: 1, Type: "ability", Recall: 0},
	{ID: "splendor-2-final-words", Name: "Final Words", Domain: "splendor", Level: 2, Type: "spell", Recall: 1},
	{ID: "splendor-2-healing-hands", Name: "Healing Hands", Domain: "splendor", Level: 2, Type: "spell", Recall: 1},
	{ID: "splendor-3-second-wind", Name: "Second Wind", Domain: "splendor", Level: 3, Type: "ability", Recall: 2},
	{ID: "splendor-4-healing-strike", Name: "Healing Strike", Domain: "splendor", Level: 4, Type: "spell", Recall: 2},
	{ID: "splendor-5-healing-touch", Name: "Healing Touch", Domain: "splendor", Level: 5, Type: "spell", Recall: 2},
	{ID: "splendor-6-splendor-touched", Name: "Splendor-Touched", Domain: "splendor", Level: 6, Type: "ability", Recall: 2},
	{ID: "splendor-7-restoration", Name: "Restoration", Domain: "splendor", Level: 7, Type: "spell", Recall: 3},
	{ID: "splendor-8-shield-aura", Name: "Shield Aura", Domain: "splendor", Level: 8, Type: "spell", Recall: 2},
	{ID: "splendor-9-salvation-beam", Name: "Salvation Beam", Domain: "splendor", Level: 9, Type: "spell", Recall: 3},
	{ID: "splendor-10-resurrection", Name: "Resurrection", Domain: "splendor", Level: 10, Type: "spell", Recall: 4},

	// Valor
	{ID: "valor-1-bare-bones", Name: "Bare Bones", Domain: "valor", Level: 1, Type: "ability", Recall: 0},
	{ID: "valor-1-forceful-push", Name: "Forceful Push", Domain: "valor", Level: 1, Type: "ability", Recall: 1},
	{ID: "valor-1-i-am-your-shield", Name: "I Am Your Shield", Domain: "valor", Level: 1, Type: "ability", Recall: 1},
	{ID: "valor-2-body-basher", Name: "Body Basher", Domain: "valor", Level: 2, Type: "ability", Recall: 1},
	{ID: "valor-2-bold-presence", Name: "Bold Presence", Domain: "valor", Level: 2, Type: "ability", Recall: 1},
	{ID: "valor-3-critical-inspiration", Name: "Critical Inspiration", Domain: "valor", Level: 3, Type: "ability", Recall: 1},
	{ID: "valor-4-shrug-it-off", Name: "Shrug It Off", Domain: "valor", Level: 4, Type: "ability", Recall: 2},
	{ID: "valor-5-armorer", Name: "Armorer", Domain: "valor", Level: 5, Type: "ability", Recall: 2},
	{ID: "valor-6-valor-touched", Name: "Valor-Touched", Domain: "valor", Level: 6, Type: "ability", Recall: 2},
	{ID: "valor-7-full-armor", Name: "Full Armor", Domain: "valor", Level: 7, Type: "ability", Recall: 2},
	{ID: "valor-8-rousing-strike", Name: "Rousing Strike", Domain: "valor", Level: 8, Type: "ability", Recall: 3},
	{ID: "valor-9-goad-them-on", Name: "Goad Them On", Domain: "valor", Level: 9, Type: "ability", Recall: 3},
	{ID: "valor-10-unbreakable", Name: "Unbreakable", Domain: "valor", Level: 10, Type: "ability", Recall: 4},
}
