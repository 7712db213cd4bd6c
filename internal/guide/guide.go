// Package guide holds the survival-guide content: a small Italian
// phrasebook with Spanish glosses and the practical tips for the day.
package guide

import "github.com/sgarcia/romaday/internal/models"

func Phrases() []models.Phrase {
	return []models.Phrase{
		{Word: "Buongiorno", Phonetic: "/bwonˈdʒorno/", Simplified: "buon-YOR-no", Meaning: "Buenos días"},
		{Word: "Grazie", Phonetic: "/ˈɡrattsje/", Simplified: "GRA-tsie", Meaning: "Gracias"},
		{Word: "Per favore", Phonetic: "/per faˈvoːre/", Simplified: "per fa-VO-re", Meaning: "Por favor"},
		{Word: "Quanto costa?", Phonetic: "/ˈkwanto ˈkɔsta/", Simplified: "KUAN-to COS-ta", Meaning: "¿Cuánto cuesta?"},
		{Word: "Dov'è il bagno?", Phonetic: "/doˈvɛ il ˈbaɲɲo/", Simplified: "do-VE il BA-ño", Meaning: "¿Dónde está el baño?"},
		{Word: "Il conto", Phonetic: "/il ˈkonto/", Simplified: "il CON-to", Meaning: "La cuenta"},
		{Word: "Scusi", Phonetic: "/ˈskuːzi/", Simplified: "SCU-si", Meaning: "Disculpe"},
		{Word: "Acqua", Phonetic: "/ˈakkwa/", Simplified: "AC-cua", Meaning: "Agua"},
	}
}

func Tips() []models.Tip {
	return []models.Tip{
		{
			Title: "Fontana di Trevi (nuevas reglas)",
			Body:  "Aforo limitado a 400 personas. Prohibido sentarse en el mármol, comer o beber. Flujo de visitantes circular y constante.",
		},
		{
			Title: "Agua gratis (\"nasoni\")",
			Body:  "Roma está llena de fuentes potables gratuitas. Lleva tu botella reutilizable y rellénala por el camino.",
		},
		{
			Title: "Comer \"al banco\"",
			Body:  "El café o el cornetto en la barra cuesta la mitad que sentado en mesa.",
		},
	}
}
