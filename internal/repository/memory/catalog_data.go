package memory

import "bb-schoonmaak-backend/internal/domain"

var services = []domain.Service{
	{
		ID:          "s1",
		Slug:        "schoonmaakonderhoud",
		Title:       "Schoonmaakonderhoud",
		Description: "Dagelijks en periodiek schoonmaakonderhoud van kantoren, scholen, en instellingen. Wij zorgen voor een schone werkplek.",
		Details:     "Een schone werkomgeving is het visitekaartje van uw organisatie en draagt direct bij aan de productiviteit en het welzijn van uw medewerkers. Bij B&B Schoonmaakdiensten verzorgen wij het dagelijks en periodiek onderhoud van kantoren, scholen, zorginstellingen en VvE’s. Wij werken met vaste teams en duidelijke werkprogramma’s, zodat u altijd weet waar u aan toe bent. Van het legen van prullenbakken en het afnemen van bureaus tot sanitaire reiniging; wij ontzorgen u volledig.",
		Icon:        domain.IconSparkles,
		Span:        true,
	},
	{
		ID:          "s2",
		Slug:        "glasbewassing",
		Title:       "Glasbewassing",
		Description: "Specialistische glasbewassing voor elk type pand. Van traditioneel ladderwerk tot tuckerpole systemen.",
		Details:     "Schone ramen geven uw pand een frisse en verzorgde uitstraling. Onze gespecialiseerde glazenwassers beheersen alle technieken: van traditioneel ladderwerk voor de lagere etages tot geavanceerde tuckerpole-systemen (telewash) voor veilig werken op hoogte. Ook voor hoogwerkers draaien wij onze hand niet om. Wij reinigen niet alleen het glas, maar nemen standaard ook de kozijnen mee voor een perfect resultaat.",
		Icon:        domain.IconDroplets,
	},
	{
		ID:          "s3",
		Slug:        "vloeronderhoud",
		Title:       "Vloeronderhoud",
		Description: "Conserveren, polymeren en dieptereiniging van alle soorten vloeren. Wij verlengen de levensduur.",
		Details:     "Vloeren hebben het zwaar te verduren. Of het nu gaat om linoleum, marmoleum, PVC, tapijt of natuursteen; elke vloer vereist specifiek onderhoud om de levensduur te verlengen en de uitstraling te behouden. B&B Schoonmaakdiensten is expert in het machinaal schrobben, conserveren (in de was zetten/polymeren) en sprayen van harde vloeren. Ook voor dieptereiniging van tapijten bent u bij ons aan het juiste adres.",
		Icon:        domain.IconPaintBucket,
	},
	{
		ID:          "s4",
		Slug:        "bouwopruiming",
		Title:       "Bouwopruiming",
		Description: "Grondige opleveringsschoonmaak bij nieuwbouw of renovatie. Direct gebruiksklaar.",
		Details:     "Een bouw- of renovatieproject levert veel stof en restmateriaal op. Voordat een pand in gebruik genomen kan worden, is een grondige bouwschoonmaak essentieel. Wij verwijderen bouwstof, cementsluiers, verfresten en stickers, en zorgen dat ramen, vloeren en sanitair brandschoon zijn. Zo kan de oplevering soepel verlopen en kunnen de gebruikers direct in een frisse omgeving aan de slag.",
		Icon:        domain.IconBuilding,
	},
	{
		ID:          "s5",
		Slug:        "gevelreiniging",
		Title:       "Gevelreiniging",
		Description: "Verwijderen van graffiti, alg en aanslag voor een representatieve uitstraling.",
		Details:     "De gevel is het eerste wat bezoekers zien. Weersinvloeden, algen, mossen en graffiti kunnen de uitstraling van uw pand flink aantasten. Met onze gevelreinigingsdiensten herstellen wij uw gevel in oude glorie. Wij gebruiken verantwoorde reinigingstechnieken die effectief zijn tegen vuil maar zacht voor de ondergrond. Een schone gevel verhoogt niet alleen de waarde van uw pand, maar voorkomt ook bouwkundige schade op de lange termijn.",
		Icon:        domain.IconWind,
		Span:        true,
	},
}

var jobs = []domain.Job{
	{
		ID:          "j1",
		Title:       "Schoonmaakmedewerker",
		Location:    "Regio Leiden",
		Hours:       "Parttime / Fulltime",
		Description: "Voor diverse locaties zoeken wij gemotiveerde schoonmaakmedewerkers. Ervaring is een pré, maar enthousiasme is belangrijker.",
	},
}

var reviews = []domain.Review{
	{
		ID:     1,
		Author: "Hans de Vries",
		Rating: 5,
		Text:   "Fantastische service! De ramen zijn streeploos schoon en de kozijnen worden ook altijd netjes meegenomen. Vriendelijke glazenwassers die hun afspraken nakomen.",
		Date:   "1 maand geleden",
	},
	{
		ID:     2,
		Author: "L. van den Berg",
		Rating: 5,
		Text:   "Wij maken zakelijk gebruik van B&B Schoonmaakdiensten voor ons kantoorpand. Zeer tevreden over de communicatie en de kwaliteit van het schoonmaakwerk. Een aanrader.",
		Date:   "2 maanden geleden",
	},
	{
		ID:     3,
		Author: "Pieter Janssen",
		Rating: 5,
		Text:   "Na de verbouwing een bouwopruiming laten doen. Wat een verademing! Alles was binnen no-time stofvrij en schoon. Keurig werk geleverd.",
		Date:   "3 maanden geleden",
	},
}

var about = domain.AboutContent{
	Title:      "Betrouwbaar, Flexibel en Vakkundig.",
	Paragraph1: "B&B Schoonmaakdiensten is een dynamisch schoonmaakbedrijf dat staat voor kwaliteit en persoonlijk contact. Wij nemen de zorg voor uw pand volledig uit handen, zodat u zich kunt richten op uw eigen werkzaamheden.",
	Paragraph2: "Met een team van goed opgeleide en betrokken medewerkers bedienen wij een breed scala aan opdrachtgevers: van kantoren en VvE's tot scholen en bouwprojecten. Wij werken met korte communicatielijnen en heldere afspraken, want afspraak is bij ons ook écht afspraak.",
}

var navItems = []domain.NavItem{
	{Label: "Home", Href: "/", SectionID: "home"},
	{Label: "Over Ons", Href: "/#about", SectionID: "about"},
	{Label: "Diensten", Href: "/#services", SectionID: "services"},
	{Label: "Vacatures", Href: "/#vacancies", SectionID: "vacancies"},
	{Label: "Contact", Href: "/#contact", SectionID: "contact"},
}
