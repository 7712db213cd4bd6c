package itinerary

import "github.com/sgarcia/romaday/internal/models"

// Landmark coordinates used by the day plan and the map view.
var (
	PortCivitavecchia = models.Coordinates{Lat: 42.0939, Lng: 11.7893}
	StazioneSanPietro = models.Coordinates{Lat: 41.8970, Lng: 12.4450}
	PiazzaSanPietro   = models.Coordinates{Lat: 41.9022, Lng: 12.4568}
	CastelSantAngelo  = models.Coordinates{Lat: 41.9031, Lng: 12.4663}
	PiazzaNavona      = models.Coordinates{Lat: 41.8992, Lng: 12.4731}
	Pantheon          = models.Coordinates{Lat: 41.8986, Lng: 12.4769}
	CampoDeFiori      = models.Coordinates{Lat: 41.8956, Lng: 12.4722}
	FontanaDiTrevi    = models.Coordinates{Lat: 41.9009, Lng: 12.4833}
	ViaDelCorso       = models.Coordinates{Lat: 41.9013, Lng: 12.4797}
	PiazzaVenezia     = models.Coordinates{Lat: 41.8955, Lng: 12.4823}
	Colosseo          = models.Coordinates{Lat: 41.8902, Lng: 12.4922}
)

// Default returns the canonical day plan. Declaration order is the
// authoritative chronology: the engine never sorts by start time, so
// an out-of-order edit here is an authoring error (validate flags it
// as a warning at startup).
func Default() []models.Activity {
	return []models.Activity{
		{
			ID:           "dock-civitavecchia",
			Title:        "Atraque en Civitavecchia",
			StartTime:    "07:00",
			EndTime:      "07:00",
			LocationName: "Puerto de Civitavecchia",
			Coords:       PortCivitavecchia,
			Description:  "El barco atraca. Desayuno a bordo antes de bajar: en tierra el tiempo es oro.",
			KeyDetails:   "Llevar: botella vacía, gorra, el billete de tren descargado en el móvil.",
			PriceEUR:     0,
			Type:         models.TypeLogistics,
			Notes:        models.NoteCritical,
			Warning:      "Si el barco atraca con retraso, recortar Castel Sant'Angelo, nunca el tren de vuelta.",
		},
		{
			ID:              "tren-ida",
			Title:           "Shuttle + tren a Roma",
			StartTime:       "07:20",
			EndTime:         "08:40",
			LocationName:    "Puerto de Civitavecchia",
			EndLocationName: "Stazione Roma S. Pietro",
			Coords:          PortCivitavecchia,
			EndCoords:       &StazioneSanPietro,
			Description:     "Shuttle gratuito del puerto hasta Largo della Pace, a pie a la estación y tren regional hasta Roma San Pietro.",
			KeyDetails:      "El billete regional ida y vuelta cubre también el trayecto de regreso: no tirarlo.",
			PriceEUR:        9.20,
			Type:            models.TypeTransport,
			Notes:           models.NoteCritical,
			MapsLink:        "https://maps.google.com/?q=Civitavecchia+Stazione",
			Warning:         "Validar el billete en las máquinas verdes del andén antes de subir. Multa si no.",
		},
		{
			ID:           "san-pietro",
			Title:        "Plaza de San Pedro",
			StartTime:    "08:50",
			EndTime:      "09:40",
			LocationName: "Piazza San Pietro",
			Coords:       PiazzaSanPietro,
			Description:  "Diez minutos a pie desde la estación. La plaza y la fachada, sin entrar a la basílica.",
			KeyDetails:   "A primera hora la cola de la basílica ya da la vuelta a la columnata: se mira, no se entra.",
			PriceEUR:     0,
			Type:         models.TypeSightseeing,
			MapsLink:     "https://maps.google.com/?q=Piazza+San+Pietro",
		},
		{
			ID:           "castel-santangelo",
			Title:        "Castel Sant'Angelo y el puente",
			StartTime:    "09:50",
			EndTime:      "10:30",
			LocationName: "Castel Sant'Angelo",
			Coords:       CastelSantAngelo,
			Description:  "Bajar por Via della Conciliazione, fotos desde el Ponte Sant'Angelo con los ángeles de Bernini.",
			KeyDetails:   "Solo exterior. La mejor foto del castillo es desde el puente, lado oeste.",
			PriceEUR:     0,
			Type:         models.TypeSightseeing,
		},
		{
			ID:           "piazza-navona",
			Title:        "Piazza Navona",
			StartTime:    "10:45",
			EndTime:      "11:15",
			LocationName: "Piazza Navona",
			Coords:       PiazzaNavona,
			Description:  "Cruzar el Tíber y entrar al centro histórico. Fuente de los Cuatro Ríos.",
			KeyDetails:   "Los cafés de la plaza cobran el doble: mirar sí, sentarse no.",
			PriceEUR:     0,
			Type:         models.TypeSightseeing,
		},
		{
			ID:           "pantheon",
			Title:        "Pantheon",
			StartTime:    "11:20",
			EndTime:      "11:50",
			LocationName: "Pantheon",
			Coords:       Pantheon,
			Description:  "Entrada con franja horaria. El óculo a mediodía merece cada céntimo.",
			KeyDetails:   "Entrada comprada online para las 11:20; enseñar el QR en el móvil.",
			PriceEUR:     5,
			Type:         models.TypeSightseeing,
			MapsLink:     "https://maps.google.com/?q=Pantheon+Roma",
		},
		{
			ID:           "pranzo",
			Title:        "Pizza al taglio",
			StartTime:    "12:00",
			EndTime:      "12:45",
			LocationName: "Campo de' Fiori",
			Coords:       CampoDeFiori,
			Description:  "Porción de pizza al peso y suppli, de pie como los romanos.",
			KeyDetails:   "Presupuesto tope 8€ entre dos trozos y bebida. Rellenar la botella en un nasone.",
			PriceEUR:     8,
			Type:         models.TypeFood,
		},
		{
			ID:           "trevi",
			Title:        "Fontana di Trevi",
			StartTime:    "13:10",
			EndTime:      "13:40",
			LocationName: "Fontana di Trevi",
			Coords:       FontanaDiTrevi,
			Description:  "La moneda por encima del hombro izquierdo, con la mano derecha.",
			KeyDetails:   "Aforo limitado a 400 personas y flujo circular: entrar por Via della Stamperia.",
			PriceEUR:     0,
			Type:         models.TypeSightseeing,
			Warning:      "Prohibido sentarse en el mármol y comer o beber dentro del recinto. Multas al momento.",
		},
		{
			ID:           "corso",
			Title:        "Compras en Via del Corso",
			StartTime:    "13:50",
			EndTime:      "14:30",
			LocationName: "Via del Corso",
			Coords:       ViaDelCorso,
			Description:  "Imanes y recuerdos camino de Piazza Venezia.",
			KeyDetails:   "Tope de 5€ en recuerdos. Los imanes a 1€ están en las laterales, no en el Corso.",
			PriceEUR:     5,
			Type:         models.TypeShopping,
		},
		{
			ID:           "foro-romano",
			Title:        "Piazza Venezia y Foro Romano",
			StartTime:    "14:40",
			EndTime:      "15:30",
			LocationName: "Piazza Venezia",
			Coords:       PiazzaVenezia,
			Description:  "El Vittoriano y el Foro desde Via dei Fori Imperiali, el mejor tramo gratuito de Roma.",
			KeyDetails:   "Balcón panorámico gratuito del Foro junto a la Colonna Traiana.",
			PriceEUR:     0,
			Type:         models.TypeSightseeing,
		},
		{
			ID:           "colosseo",
			Title:        "Colosseo",
			StartTime:    "15:30",
			EndTime:      "16:15",
			LocationName: "Colosseo",
			Coords:       Colosseo,
			Description:  "Exterior y arco de Constantino. Sin entrada: la visita interior no cabe en un día de escala.",
			KeyDetails:   "La foto clásica es desde el lado del Tempio di Venere, luz de tarde.",
			PriceEUR:     0,
			Type:         models.TypeSightseeing,
			MapsLink:     "https://maps.google.com/?q=Colosseo",
		},
		{
			ID:              "tren-vuelta",
			Title:           "Tren de regreso",
			StartTime:       "16:40",
			EndTime:         "18:00",
			LocationName:    "Stazione Roma S. Pietro",
			EndLocationName: "Civitavecchia",
			Coords:          StazioneSanPietro,
			EndCoords:       &PortCivitavecchia,
			Description:     "Metro de margen no hay: salir del Colosseo a las 16:15 en tranvía o taxi compartido hacia San Pietro.",
			KeyDetails:      "Es el último tren con margen de seguridad. El siguiente llega demasiado justo al all-aboard.",
			PriceEUR:        0,
			Type:            models.TypeTransport,
			Notes:           models.NoteCritical,
			Warning:         "Si se pierde este tren: taxi a Civitavecchia (~120€) antes que perder el barco.",
		},
		{
			ID:              "shuttle-puerto",
			Title:           "Shuttle al muelle",
			StartTime:       "18:10",
			EndTime:         "18:40",
			LocationName:    "Stazione Civitavecchia",
			EndLocationName: "Puerto de Civitavecchia",
			Coords:          models.Coordinates{Lat: 42.0956, Lng: 11.7981},
			EndCoords:       &PortCivitavecchia,
			Description:     "A pie hasta Largo della Pace y shuttle del puerto hasta la pasarela del barco.",
			KeyDetails:      "El shuttle sale cada 15 minutos; con la tarjeta de crucero es gratuito.",
			PriceEUR:        0,
			Type:            models.TypeTransport,
			Notes:           models.NoteCritical,
		},
		{
			ID:           "a-bordo",
			Title:        "A bordo",
			StartTime:    "19:30",
			EndTime:      "19:30",
			LocationName: "Puerto de Civitavecchia",
			Coords:       PortCivitavecchia,
			Description:  "Pasarela cerrada. El barco zarpa a las 20:00 con o sin rezagados.",
			KeyDetails:   "El margen de 50 minutos tras el shuttle es el colchón del día: no gastarlo en Roma.",
			PriceEUR:     0,
			Type:         models.TypeLogistics,
			Notes:        models.NoteCritical,
		},
	}
}

// CityTrack is the walking route through the centre as a GPS polyline,
// used by the map view and replayed by the simulated position source.
func CityTrack() []models.Coordinates {
	return []models.Coordinates{
		StazioneSanPietro,
		PiazzaSanPietro,
		CastelSantAngelo,
		{Lat: 41.9017, Lng: 12.4690}, // Ponte Sant'Angelo
		PiazzaNavona,
		Pantheon,
		CampoDeFiori,
		FontanaDiTrevi,
		ViaDelCorso,
		PiazzaVenezia,
		{Lat: 41.8928, Lng: 12.4870}, // Via dei Fori Imperiali
		Colosseo,
	}
}

// ByID returns the activity with the given id from the sequence, or
// false when absent.
func ByID(activities []models.Activity, id string) (models.Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}
