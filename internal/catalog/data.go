package catalog

// entries is the canonical catalog. Order matters: it is the deterministic
// tie-break for resolver matches, so append new services rather than
// reordering existing ones.
var entries = []Entry{
	{ID: "netflix", DisplayName: "Netflix", Color: "#E50914", Icon: "netflix", Category: Streaming,
		Aliases: []string{"netflix"}},
	{ID: "spotify", DisplayName: "Spotify", Color: "#1DB954", Icon: "spotify", Category: Music,
		Aliases: []string{"spotify", "spotify premium"}},
	{ID: "youtube-premium", DisplayName: "YouTube Premium", Color: "#FF0000", Icon: "youtube", Category: Streaming,
		Aliases: []string{"youtube premium", "youtube", "yt premium"}},
	{ID: "disney-plus", DisplayName: "Disney+", Color: "#113CCF", Icon: "disney-plus", Category: Streaming,
		Aliases: []string{"disney+", "disney plus", "disney"}},
	{ID: "hbo-max", DisplayName: "HBO Max", Color: "#002BE7", Icon: "hbo-max", Category: Streaming,
		Aliases: []string{"hbo max", "hbo"}},
	{ID: "prime-video", DisplayName: "Amazon Prime", Color: "#00A8E1", Icon: "prime-video", Category: Streaming,
		Aliases: []string{"amazon prime", "prime video", "prime"}},
	{ID: "twitch", DisplayName: "Twitch", Color: "#9146FF", Icon: "twitch", Category: Streaming,
		Aliases: []string{"twitch", "twitch turbo"}},
	{ID: "apple-music", DisplayName: "Apple Music", Color: "#FA243C", Icon: "apple-music", Category: Music,
		Aliases: []string{"apple music"}},
	{ID: "tidal", DisplayName: "Tidal", Color: "#000000", Icon: "tidal", Category: Music,
		Aliases: []string{"tidal"}},
	{ID: "steam", DisplayName: "Steam", Color: "#171A21", Icon: "steam", Category: Gaming,
		Aliases: []string{"steam"}},
	{ID: "playstation-plus", DisplayName: "PlayStation Plus", Color: "#00439C", Icon: "playstation", Category: Gaming,
		Aliases: []string{"playstation plus", "ps plus", "psn"}},
	{ID: "xbox-game-pass", DisplayName: "Xbox Game Pass", Color: "#107C10", Icon: "xbox", Category: Gaming,
		Aliases: []string{"xbox game pass", "game pass", "xbox"}},
	{ID: "nintendo-online", DisplayName: "Nintendo Switch Online", Color: "#E60012", Icon: "nintendo", Category: Gaming,
		Aliases: []string{"nintendo switch online", "nintendo"}},
	{ID: "icloud", DisplayName: "iCloud+", Color: "#3693F3", Icon: "icloud", Category: Cloud,
		Aliases: []string{"icloud+", "icloud"}},
	{ID: "google-one", DisplayName: "Google One", Color: "#4285F4", Icon: "google-one", Category: Cloud,
		Aliases: []string{"google one", "google storage"}},
	{ID: "dropbox", DisplayName: "Dropbox", Color: "#0061FF", Icon: "dropbox", Category: Cloud,
		Aliases: []string{"dropbox"}},
	{ID: "github", DisplayName: "GitHub", Color: "#181717", Icon: "github", Category: Productivity,
		Aliases: []string{"github", "github copilot"}},
	{ID: "notion", DisplayName: "Notion", Color: "#000000", Icon: "notion", Category: Productivity,
		Aliases: []string{"notion"}},
	{ID: "figma", DisplayName: "Figma", Color: "#F24E1E", Icon: "figma", Category: Productivity,
		Aliases: []string{"figma"}},
	{ID: "slack", DisplayName: "Slack", Color: "#4A154B", Icon: "slack", Category: Productivity,
		Aliases: []string{"slack"}},
	{ID: "zoom", DisplayName: "Zoom", Color: "#2D8CFF", Icon: "zoom", Category: Productivity,
		Aliases: []string{"zoom"}},
	{ID: "microsoft-365", DisplayName: "Microsoft 365", Color: "#D83B01", Icon: "microsoft-365", Category: Productivity,
		Aliases: []string{"microsoft 365", "office 365", "office"}},
	{ID: "adobe-cc", DisplayName: "Adobe Creative Cloud", Color: "#FF0000", Icon: "adobe", Category: Productivity,
		Aliases: []string{"adobe creative cloud", "creative cloud", "adobe"}},
	{ID: "nordvpn", DisplayName: "NordVPN", Color: "#4687FF", Icon: "nordvpn", Category: Security,
		Aliases: []string{"nordvpn", "nord vpn"}},
	{ID: "1password", DisplayName: "1Password", Color: "#0572EC", Icon: "1password", Category: Security,
		Aliases: []string{"1password", "1 password"}},
	{ID: "bitwarden", DisplayName: "Bitwarden", Color: "#175DDC", Icon: "bitwarden", Category: Security,
		Aliases: []string{"bitwarden"}},
	{ID: "strava", DisplayName: "Strava", Color: "#FC4C02", Icon: "strava", Category: Fitness,
		Aliases: []string{"strava"}},
	{ID: "peloton", DisplayName: "Peloton", Color: "#181A1D", Icon: "", Category: Fitness,
		Aliases: []string{"peloton"}},
	{ID: "revolut", DisplayName: "Revolut", Color: "#0666EB", Icon: "revolut", Category: Finance,
		Aliases: []string{"revolut"}},
	{ID: "paypal", DisplayName: "PayPal", Color: "#003087", Icon: "paypal", Category: Finance,
		Aliases: []string{"paypal"}},
	{ID: "wise", DisplayName: "Wise", Color: "#9FE870", Icon: "wise", Category: Finance,
		Aliases: []string{"wise", "transferwise"}},
	{ID: "pge", DisplayName: "PG&E", Color: "#0065A4", Icon: "https://static.pge.com/favicon.ico", Category: Utilities,
		Aliases: []string{"pg&e", "pge", "pg"}},
	{ID: "xfinity", DisplayName: "Xfinity", Color: "#711CAC", Icon: "xfinity", Category: Utilities,
		Aliases: []string{"xfinity", "comcast"}},
	{ID: "airbnb", DisplayName: "Airbnb", Color: "#FF5A5F", Icon: "airbnb", Category: Housing,
		Aliases: []string{"airbnb"}},
	{ID: "rent", DisplayName: "Rent", Color: "#8D6E63", Icon: "", Category: Housing,
		Aliases: []string{"rent", "landlord"}},
	{ID: "klarna", DisplayName: "Klarna", Color: "#FFB3C7", Icon: "klarna", Category: Debt,
		Aliases: []string{"klarna"}},
	{ID: "affirm", DisplayName: "Affirm", Color: "#4A4AF4", Icon: "affirm", Category: Debt,
		Aliases: []string{"affirm"}},
	{ID: "legalzoom", DisplayName: "LegalZoom", Color: "#FF9A00", Icon: "legalzoom", Category: Legal,
		Aliases: []string{"legalzoom", "legal zoom"}},
	{ID: "coursera", DisplayName: "Coursera", Color: "#0056D2", Icon: "coursera", Category: Education,
		Aliases: []string{"coursera"}},
	{ID: "duolingo", DisplayName: "Duolingo", Color: "#58CC02", Icon: "duolingo", Category: Education,
		Aliases: []string{"duolingo", "duolingo super"}},
}
