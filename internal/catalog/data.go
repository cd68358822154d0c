package catalog

import "github.com/magabrotheeeer/storefront-backend/internal/models"

var defaultProducts = []models.Product{
	// Rust
	{ProductID: "rust-disconnect", Name: "Disconnect", Game: "Rust", Description: "Premium external Rust tool with full ESP, aimbot, and miscellaneous features. Unmatched performance.", Features: []string{"ESP/Wallhack", "Aimbot", "Loot ESP", "Player Info", "Recoil Control"}, Price: 29.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-rust-1.jpg", AccentColor: "#00D4FF", Tier: "Premium"},
	{ProductID: "rust-fluent", Name: "Fluent", Game: "Rust", Description: "Lightweight Rust tool focused on legit gameplay. Clean UI with essential features.", Features: []string{"ESP", "Soft Aimbot", "Radar", "No Recoil"}, Price: 19.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-rust-2.jpg", AccentColor: "#39FF14", Tier: "Standard"},
	{ProductID: "rust-serenity", Name: "Serenity", Game: "Rust", Description: "Budget-friendly option with core features for casual players.", Features: []string{"ESP", "Basic Aimbot", "Radar"}, Price: 12.99, Status: "testing", StatusLabel: "Testing", ImageURL: "/placeholder-rust-3.jpg", AccentColor: "#00D4FF", Tier: "Lite"},
	// Valorant
	{ProductID: "val-phantom", Name: "Phantom", Game: "Valorant", Description: "Top-tier Valorant enhancement with advanced triggerbot and ESP systems.", Features: []string{"Triggerbot", "ESP", "Radar Hack", "Skin Changer", "Stream Proof"}, Price: 34.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-val-1.jpg", AccentColor: "#FF0055", Tier: "Premium"},
	{ProductID: "val-spectre", Name: "Spectre", Game: "Valorant", Description: "Lightweight external tool for competitive Valorant.", Features: []string{"ESP", "Radar", "Glow ESP"}, Price: 14.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-val-2.jpg", AccentColor: "#00D4FF", Tier: "Standard"},
	// Marvel Rivals
	{ProductID: "mr-infinity", Name: "Infinity", Game: "Marvel Rivals", Description: "Dominate Marvel Rivals with advanced aim assist and wall vision.", Features: []string{"Aimbot", "ESP", "Hero Tracker", "Ability Cooldown"}, Price: 24.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-mr-1.jpg", AccentColor: "#39FF14", Tier: "Premium"},
	{ProductID: "mr-nexus", Name: "Nexus", Game: "Marvel Rivals", Description: "Essential toolkit for Marvel Rivals players.", Features: []string{"ESP", "Radar", "Hero Info"}, Price: 14.99, Status: "updating", StatusLabel: "Updating", ImageURL: "/placeholder-mr-2.jpg", AccentColor: "#00D4FF", Tier: "Standard"},
	// Overwatch
	{ProductID: "ow-vortex", Name: "Vortex", Game: "Overwatch", Description: "Full-featured Overwatch 2 enhancement suite.", Features: []string{"Aimbot", "ESP", "Triggerbot", "Prediction", "Stream Proof"}, Price: 29.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-ow-1.jpg", AccentColor: "#FFD600", Tier: "Premium"},
	{ProductID: "ow-pulse", Name: "Pulse", Game: "Overwatch", Description: "Clean external tool for OW2 competitive.", Features: []string{"ESP", "Radar", "Glow"}, Price: 16.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-ow-2.jpg", AccentColor: "#00D4FF", Tier: "Standard"},
	// Arc Raiders
	{ProductID: "arc-titan", Name: "Titan", Game: "Arc Raiders", Description: "Early access Arc Raiders tool with full feature set.", Features: []string{"ESP", "Aimbot", "Loot Hack", "Radar"}, Price: 22.99, Status: "testing", StatusLabel: "Testing", ImageURL: "/placeholder-arc-1.jpg", AccentColor: "#39FF14", Tier: "Premium"},
	// CS2
	{ProductID: "cs2-division", Name: "Division", Game: "CS2", Description: "The ultimate CS2 enhancement. Trusted by thousands.", Features: []string{"Aimbot", "Wallhack", "ESP", "Triggerbot", "Bhop", "Skin Changer"}, Price: 34.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-cs2-1.jpg", AccentColor: "#00D4FF", Tier: "Premium"},
	{ProductID: "cs2-quantum", Name: "Quantum", Game: "CS2", Description: "Budget CS2 option for casual play.", Features: []string{"ESP", "Radar", "Bhop"}, Price: 12.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-cs2-2.jpg", AccentColor: "#39FF14", Tier: "Standard"},
	// Minecraft
	{ProductID: "mc-obsidian", Name: "Obsidian", Game: "Minecraft", Description: "Premium Minecraft client with PvP and utility modules.", Features: []string{"KillAura", "ESP", "Fly", "Speed", "X-Ray", "AutoBuild"}, Price: 19.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-mc-1.jpg", AccentColor: "#39FF14", Tier: "Premium"},
	{ProductID: "mc-bedrock", Name: "Bedrock", Game: "Minecraft", Description: "Lightweight Minecraft utility mod.", Features: []string{"ESP", "X-Ray", "Speed", "Fly"}, Price: 9.99, Status: "undetected", StatusLabel: "Undetected", ImageURL: "/placeholder-mc-2.jpg", AccentColor: "#00D4FF", Tier: "Lite"},
}

var defaultReviews = []models.Review{
	{ReviewID: "r1", UserName: "Skyline", ProductName: "Disconnect", Rating: 5, Text: "Best external Rust tool I've used. ESP is crystal clear.", CreatedAt: "2025-12-01T10:00:00Z"},
	{ReviewID: "r2", UserName: "Arcturus", ProductName: "Division", Rating: 5, Text: "Been using Division for 3 months. Absolutely solid.", CreatedAt: "2025-11-20T14:00:00Z"},
	{ReviewID: "r3", UserName: "NotFlokii", ProductName: "Phantom", Rating: 5, Text: "Phantom is unmatched for Valorant. Stream proof is a game changer.", CreatedAt: "2025-11-15T09:00:00Z"},
	{ReviewID: "r4", UserName: "rzvisualz", ProductName: "Infinity", Rating: 5, Text: "Marvel Rivals domination. Hero tracker is insane.", CreatedAt: "2025-10-28T16:00:00Z"},
	{ReviewID: "r5", UserName: "SpinXO_", ProductName: "Vortex", Rating: 5, Text: "Vortex prediction system is next level for OW2.", CreatedAt: "2025-10-15T11:00:00Z"},
	{ReviewID: "r6", UserName: "Jake2154", ProductName: "Obsidian", Rating: 5, Text: "Best MC client on the market. KillAura is smooth.", CreatedAt: "2025-09-20T13:00:00Z"},
	{ReviewID: "r7", UserName: "Hekieee", ProductName: "Quantum", Rating: 5, Text: "Great budget CS2 option. Radar is super useful.", CreatedAt: "2025-09-10T08:00:00Z"},
	{ReviewID: "r8", UserName: "Dayne20", ProductName: "Fluent", Rating: 5, Text: "Fluent is perfect for legit play. Clean and smooth.", CreatedAt: "2025-08-25T15:00:00Z"},
	{ReviewID: "r9", UserName: "twat2", ProductName: "Titan", Rating: 4, Text: "Arc Raiders tool works great. Waiting for more features.", CreatedAt: "2025-08-10T12:00:00Z"},
	{ReviewID: "r10", UserName: "1pacAday", ProductName: "Spectre", Rating: 5, Text: "Lightweight and reliable. Exactly what I needed for ranked.", CreatedAt: "2025-07-30T10:00:00Z"},
}
