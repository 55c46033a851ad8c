package main

type seedEquipment struct {
	Name        string
	Type        string
	Description string
}

type seedStudio struct {
	ID          string
	Name        string
	Area        int
	Category    string
	Description string
	Images      []string
	Equipment   []string // equipment names, resolved to ids on insert
	Price       string
}

var equipmentData = []seedEquipment{
	{"Shure SM7B Microphone", "Audio", "Professional broadcast microphone, perfect for podcasting and vocal recording"},
	{"Audio-Technica AT2020", "Audio", "Condenser microphone with exceptional detail and low noise"},
	{"Sony A7S III Camera", "Video", "4K full-frame mirrorless camera ideal for video production and streaming"},
	{"Focusrite Scarlett 2i2", "Recording", "USB audio interface for professional recording and monitoring"},
	{"Rode PodMic", "Audio", "Broadcast-grade dynamic microphone designed specifically for podcasting"},
	{"Elgato Key Light Air", "Lighting", "Professional LED panel light with app control for streaming and video"},
	{"MacBook Pro M3", "Computer", "High-performance laptop for audio/video editing and live streaming"},
	{"Blackmagic ATEM Mini", "Streaming", "Live production switcher for multi-camera streaming and recording"},
}

var studioData = []seedStudio{
	{
		ID:          "studio-podcast-pro",
		Name:        "Studio Podcast Pro",
		Area:        25,
		Category:    "Podcast",
		Description: "Studio professionnel dédié au podcasting avec isolation acoustique optimale et équipements haut de gamme. Parfait pour des enregistrements de qualité professionnelle.",
		Images:      []string{"/images/studio-placeholder-1-1.jpg", "/images/studio-placeholder-1-2.jpg", "/images/studio-placeholder-1-3.jpg"},
		Equipment:   []string{"Shure SM7B Microphone", "Focusrite Scarlett 2i2", "MacBook Pro M3"},
		Price:       "150.00",
	},
	{
		ID:          "studio-streaming-live",
		Name:        "Studio Streaming Live",
		Area:        35,
		Category:    "Streaming",
		Description: "Espace moderne équipé pour le streaming en direct avec éclairage professionnel et setup multi-caméras. Idéal pour les créateurs de contenu et les diffusions live.",
		Images:      []string{"/images/studio-placeholder-2-1.jpg", "/images/studio-placeholder-2-2.jpg", "/images/studio-placeholder-2-3.jpg"},
		Equipment:   []string{"Sony A7S III Camera", "Elgato Key Light Air", "Blackmagic ATEM Mini", "MacBook Pro M3"},
		Price:       "200.00",
	},
	{
		ID:          "studio-recording-deluxe",
		Name:        "Studio Enregistrement Deluxe",
		Area:        50,
		Category:    "Enregistrement",
		Description: "Studio d'enregistrement haut de gamme avec acoustique professionnelle et équipements premium. Parfait pour la musique, voix-off et enregistrements audio de qualité studio.",
		Images:      []string{"/images/studio-placeholder-3-1.jpg", "/images/studio-placeholder-3-2.jpg", "/images/studio-placeholder-3-3.jpg"},
		Equipment:   []string{"Audio-Technica AT2020", "Focusrite Scarlett 2i2", "Rode PodMic", "MacBook Pro M3"},
		Price:       "250.00",
	},
	{
		ID:          "studio-production-creative",
		Name:        "Studio Production Créative",
		Area:        40,
		Category:    "Production",
		Description: "Espace polyvalent pour la production de contenu créatif, montage vidéo et post-production. Équipé pour tous types de projets audiovisuels.",
		Images:      []string{"/images/studio-placeholder-4-1.jpg", "/images/studio-placeholder-4-2.jpg", "/images/studio-placeholder-4-3.jpg"},
		Equipment:   []string{"Sony A7S III Camera", "Audio-Technica AT2020", "Elgato Key Light Air", "MacBook Pro M3"},
		Price:       "180.00",
	},
	{
		ID:          "studio-compact-starter",
		Name:        "Studio Compact Starter",
		Area:        20,
		Category:    "Podcast",
		Description: "Studio compact et abordable, parfait pour débuter dans le podcasting ou l'enregistrement. Équipement essentiel pour une qualité professionnelle accessible.",
		Images:      []string{"/images/studio-placeholder-1-1.jpg", "/images/studio-placeholder-2-2.jpg", "/images/studio-placeholder-3-3.jpg"},
		Equipment:   []string{"Rode PodMic", "Focusrite Scarlett 2i2"},
		Price:       "100.00",
	},
}
