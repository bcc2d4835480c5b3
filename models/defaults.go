package models

// DefaultSiteContent - содержимое сайта при первом запуске, пока админ его не отредактировал.
func DefaultSiteContent() SiteContent {
	return SiteContent{
		HeroTitle:     "Torneo Muskizko Udala 2026",
		HeroSubtitle:  "El evento principal de balonmano playa en Muskiz. Vive la adrenalina, la arena y la gloria en nuestra costa.",
		AboutTitle:    "Historia y Evolución",
		AboutText:     "El Torneo Muskizko Udala nació en el verano de 2015 como una pequeña iniciativa local para fomentar el deporte en la playa de La Arena.",
		AboutImageURL: "https://picsum.photos/800/800?grayscale",
		AboutStats: []Stat{
			{Value: "2015", Label: "Año Fundación"},
			{Value: "+300", Label: "Jugadores/año"},
			{Value: "10ª", Label: "Edición"},
		},
		Venue: VenueInfo{
			Title:       "La Sede: Playa de La Arena",
			Description: "Situada en un entorno natural privilegiado, la Playa de La Arena ofrece las condiciones perfectas para la práctica del balonmano playa.",
			ImageURL:    "https://picsum.photos/800/600?nature",
			Features: []string{
				"Orientación perfecta para el sol",
				"Más de 2000 plazas de aparcamiento",
				"Amplia oferta gastronómica local",
			},
		},
		Socials: Socials{
			Instagram: SocialConfig{Handle: "@muskizbeach", URL: "#"},
			Twitter:   SocialConfig{Handle: "@MuskizTorneo", URL: "#"},
			TikTok:    SocialConfig{Handle: "@handball_muskiz", URL: "#"},
			YouTube:   SocialConfig{Handle: "Canal Oficial", URL: "#"},
		},
		ContactEmail: "torneo@muskiz.com",
		Sponsors: []Sponsor{
			{ID: "s1", Name: "Ayuntamiento de Muskiz", LogoURL: "apartment", Tier: TierPlatinum},
			{ID: "s2", Name: "Petronor", LogoURL: "energy_savings_leaf", Tier: TierPlatinum},
			{ID: "s3", Name: "Caja Rural", LogoURL: "account_balance", Tier: TierGold},
		},
		Gallery: []GalleryItem{
			{ID: "g1", URL: "https://picsum.photos/600/400?random=1", Title: "Final Masculina", Year: 2025},
			{ID: "g2", URL: "https://picsum.photos/600/400?random=2", Title: "Entrega de Trofeos", Year: 2025},
		},
	}
}
