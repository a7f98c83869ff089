package gym

// catalog holds the built-in exercise encyclopedia keyed by muscle group.
// Names and cues are in Spanish with English exercise names for reference.
var catalog = map[string][]Exercise{
	"pecho": {
		{
			ID:               "bench_press",
			Name:             "Press de Banca con Barra",
			NameEn:           "Barbell Bench Press",
			PrimaryMuscles:   []string{"Pectoral Mayor"},
			SecondaryMuscles: []string{"Deltoides Anterior", "Tríceps"},
			Equipment:        []string{"barra", "banco"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementCompound,
			Tips: []string{
				"Mantén los omóplatos retraídos y deprimidos",
				"Agarre ligeramente más ancho que los hombros",
				"Baja la barra hasta el pecho de forma controlada",
				"Empuja la barra en línea recta",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "5 x 3-5", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 180, GoalEndurance: 60},
		},
		{
			ID:               "press_inclinado",
			Name:             "Press Inclinado con Barra",
			NameEn:           "Incline Barbell Press",
			PrimaryMuscles:   []string{"Pectoral Mayor (cabeza clavicular)"},
			SecondaryMuscles: []string{"Deltoides Anterior", "Tríceps"},
			Equipment:        []string{"barra", "banco inclinado"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementCompound,
			Tips: []string{
				"Inclinación del banco entre 30° y 45°",
				"No arquees excesivamente la espalda baja",
				"Controla la bajada (2-3 segundos)",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "4 x 6-8", GoalEndurance: "3 x 15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 180, GoalEndurance: 60},
		},
		{
			ID:               "press_mancuernas",
			Name:             "Press con Mancuernas",
			NameEn:           "Dumbbell Bench Press",
			PrimaryMuscles:   []string{"Pectoral Mayor"},
			SecondaryMuscles: []string{"Deltoides Anterior", "Tríceps"},
			Equipment:        []string{"mancuernas", "banco"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementCompound,
			Tips: []string{
				"Mayor rango de movimiento que con barra",
				"Las mancuernas permiten trabajo unilateral",
				"No dejes caer los codos por debajo del banco",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-12", GoalStrength: "4 x 6-8", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 150, GoalEndurance: 60},
		},
		{
			ID:               "aperturas_mancuernas",
			Name:             "Aperturas con Mancuernas",
			NameEn:           "Dumbbell Flyes",
			PrimaryMuscles:   []string{"Pectoral Mayor"},
			SecondaryMuscles: []string{"Deltoides Anterior"},
			Equipment:        []string{"mancuernas", "banco"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Ligera flexión en el codo durante todo el movimiento",
				"No bajes las mancuernas demasiado para proteger el hombro",
				"Concentrarse en el estiramiento del pectoral",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3 x 12-15", GoalStrength: "N/A", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
		{
			ID:               "fondos_pecho",
			Name:             "Fondos en Paralelas (pecho)",
			NameEn:           "Chest Dips",
			PrimaryMuscles:   []string{"Pectoral Mayor (cabeza esternal)"},
			SecondaryMuscles: []string{"Tríceps", "Deltoides Anterior"},
			Equipment:        []string{"paralelas"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementCompound,
			Tips: []string{
				"Inclínate hacia adelante para enfocarte en el pecho",
				"Baja hasta que los brazos estén paralelos al suelo",
				"Añade peso con cinturón para progresión",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "4 x 5-8", GoalEndurance: "3 x 12-15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 180, GoalEndurance: 60},
		},
		{
			ID:               "crossover_polea",
			Name:             "Crossover en Polea",
			NameEn:           "Cable Crossover",
			PrimaryMuscles:   []string{"Pectoral Mayor"},
			SecondaryMuscles: []string{"Deltoides Anterior"},
			Equipment:        []string{"polea", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Mantén tensión constante durante todo el rango",
				"Cruza las manos al frente para máxima contracción",
				"Controla la apertura excéntrica",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 12-15", GoalStrength: "N/A", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
		{
			ID:               "push_up",
			Name:             "Flexiones de Pecho",
			NameEn:           "Push-Up",
			PrimaryMuscles:   []string{"Pectoral Mayor"},
			SecondaryMuscles: []string{"Tríceps", "Deltoides Anterior", "Core"},
			Equipment:        []string{"cuerpo libre"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementCompound,
			Tips: []string{
				"Cuerpo en línea recta de cabeza a talones",
				"Codos a 45° del cuerpo, no 90°",
				"Bajar hasta casi tocar el suelo",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 15-20", GoalStrength: "5 x 5-10", GoalEndurance: "3 x AMRAP"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 120, GoalEndurance: 45},
		},
	},
	"espalda": {
		{
			ID:               "peso_muerto",
			Name:             "Peso Muerto",
			NameEn:           "Deadlift",
			PrimaryMuscles:   []string{"Erector Espinal", "Glúteos", "Isquiotibiales"},
			SecondaryMuscles: []string{"Trapecios", "Dorsal Ancho", "Cuádriceps"},
			Equipment:        []string{"barra"},
			Difficulty:       ExperienceAdvanced,
			Movement:         MovementCompound,
			Tips: []string{
				"Espalda neutra durante todo el movimiento",
				"La barra siempre cerca del cuerpo",
				"Empuja el suelo, no jales la barra",
				"Bloquea las caderas al final, no hiperextiendas",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 6-8", GoalStrength: "5 x 3-5", GoalEndurance: "3 x 10-12"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 180, GoalStrength: 240, GoalEndurance: 120},
		},
		{
			ID:               "dominadas",
			Name:             "Dominadas",
			NameEn:           "Pull-Up",
			PrimaryMuscles:   []string{"Dorsal Ancho", "Redondo Mayor"},
			SecondaryMuscles: []string{"Bíceps", "Braquial", "Romboides"},
			Equipment:        []string{"barra de dominadas"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementCompound,
			Tips: []string{
				"Agarre prono (palmas al frente) para espalda",
				"Retrae los omóplatos antes de subir",
				"Sube hasta que la barbilla supere la barra",
				"Baja de forma controlada",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 6-10", GoalStrength: "5 x 3-6", GoalEndurance: "3 x AMRAP"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 120, GoalStrength: 180, GoalEndurance: 90},
		},
		{
			ID:               "remo_barra",
			Name:             "Remo con Barra",
			NameEn:           "Barbell Row",
			PrimaryMuscles:   []string{"Dorsal Ancho", "Romboides", "Trapecios"},
			SecondaryMuscles: []string{"Bíceps", "Deltoides Posterior"},
			Equipment:        []string{"barra"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementCompound,
			Tips: []string{
				"Espalda casi paralela al suelo (45-70°)",
				"Tira de la barra hacia el abdomen bajo",
				"Retrae omóplatos al final del movimiento",
				"Rodillas ligeramente flexionadas",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "5 x 4-6", GoalEndurance: "3 x 12-15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 120, GoalStrength: 180, GoalEndurance: 90},
		},
		{
			ID:               "remo_mancuerna",
			Name:             "Remo con Mancuerna",
			NameEn:           "Dumbbell Row",
			PrimaryMuscles:   []string{"Dorsal Ancho", "Romboides"},
			SecondaryMuscles: []string{"Bíceps", "Deltoides Posterior"},
			Equipment:        []string{"mancuernas", "banco"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementCompound,
			Tips: []string{
				"Apoya la rodilla y mano en el banco",
				"Tira del codo hacia el techo",
				"No rotar el torso excesivamente",
				"Trabajo unilateral para corregir desbalances",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-12", GoalStrength: "4 x 6-8", GoalEndurance: "3 x 15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 150, GoalEndurance: 60},
		},
		{
			ID:               "jalon_polea",
			Name:             "Jalón al Pecho en Polea",
			NameEn:           "Lat Pulldown",
			PrimaryMuscles:   []string{"Dorsal Ancho"},
			SecondaryMuscles: []string{"Bíceps", "Redondo Mayor", "Romboides"},
			Equipment:        []string{"polea", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementCompound,
			Tips: []string{
				"Agarre prono ligeramente más ancho que hombros",
				"Inclínate ligeramente hacia atrás",
				"Jala hacia la clavícula, no al cuello",
				"Retrae omóplatos durante el movimiento",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-12", GoalStrength: "4 x 6-8", GoalEndurance: "3 x 15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 150, GoalEndurance: 60},
		},
		{
			ID:               "face_pull",
			Name:             "Face Pull en Polea",
			NameEn:           "Face Pull",
			PrimaryMuscles:   []string{"Deltoides Posterior", "Romboides", "Trapecios"},
			SecondaryMuscles: []string{"Manguito Rotador"},
			Equipment:        []string{"polea", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Cuerda a la altura de los ojos o arriba",
				"Tira hacia la cara separando las manos",
				"Rotación externa al final del movimiento",
				"Muy útil para salud de hombros",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 15-20", GoalStrength: "N/A", GoalEndurance: "3 x 20-25"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
	},
	"piernas": {
		{
			ID:               "sentadilla",
			Name:             "Sentadilla con Barra",
			NameEn:           "Back Squat",
			PrimaryMuscles:   []string{"Cuádriceps", "Glúteos"},
			SecondaryMuscles: []string{"Isquiotibiales", "Erector Espinal", "Core"},
			Equipment:        []string{"barra", "rack"},
			Difficulty:       ExperienceAdvanced,
			Movement:         MovementCompound,
			Tips: []string{
				"Pies a la anchura de hombros, ligeramente hacia afuera",
				"Rodillas siguen la dirección de los pies",
				"Espalda neutra, pecho arriba",
				"Profundidad mínima: muslos paralelos al suelo",
				"Empuja el suelo para subir",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-5 x 8-12", GoalStrength: "5 x 3-5", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 180, GoalStrength: 240, GoalEndurance: 90},
		},
		{
			ID:               "prensa",
			Name:             "Prensa de Piernas",
			NameEn:           "Leg Press",
			PrimaryMuscles:   []string{"Cuádriceps", "Glúteos"},
			SecondaryMuscles: []string{"Isquiotibiales"},
			Equipment:        []string{"máquina", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementCompound,
			Tips: []string{
				"Pies a la altura de hombros en la plataforma",
				"No bloquees las rodillas al extender",
				"Baja hasta 90° en las rodillas",
				"Posición alta = más glúteos, baja = más cuádriceps",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-15", GoalStrength: "4 x 8-10", GoalEndurance: "3 x 20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 120, GoalStrength: 180, GoalEndurance: 90},
		},
		{
			ID:               "extensiones_cuad",
			Name:             "Extensiones de Cuádriceps",
			NameEn:           "Leg Extension",
			PrimaryMuscles:   []string{"Cuádriceps"},
			SecondaryMuscles: []string{},
			Equipment:        []string{"máquina", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Control total en la fase negativa",
				"Pausa de 1 segundo al extender completamente",
				"No uses impulso",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 12-15", GoalStrength: "N/A", GoalEndurance: "3 x 20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
		{
			ID:               "curl_isquiotibiales",
			Name:             "Curl de Isquiotibiales",
			NameEn:           "Leg Curl",
			PrimaryMuscles:   []string{"Isquiotibiales"},
			SecondaryMuscles: []string{"Gastrocnemio"},
			Equipment:        []string{"máquina", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Control en la extensión (fase negativa)",
				"No levantes las caderas al curvar",
				"Contrae los glúteos para estabilizar",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 12-15", GoalStrength: "N/A", GoalEndurance: "3 x 20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
		{
			ID:               "hip_thrust",
			Name:             "Hip Thrust con Barra",
			NameEn:           "Barbell Hip Thrust",
			PrimaryMuscles:   []string{"Glúteo Mayor"},
			SecondaryMuscles: []string{"Isquiotibiales", "Core"},
			Equipment:        []string{"barra", "banco"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementCompound,
			Tips: []string{
				"Banco a la altura de las escápulas",
				"Pies a la anchura de caderas",
				"Empuja con los talones, no con los dedos",
				"Contrae glúteos al máximo arriba",
				"Barbilla al pecho, no mires al techo",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-15", GoalStrength: "4 x 6-8", GoalEndurance: "3 x 20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 150, GoalEndurance: 60},
		},
		{
			ID:               "zancadas",
			Name:             "Zancadas con Mancuernas",
			NameEn:           "Dumbbell Lunges",
			PrimaryMuscles:   []string{"Cuádriceps", "Glúteos"},
			SecondaryMuscles: []string{"Isquiotibiales", "Core"},
			Equipment:        []string{"mancuernas"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementCompound,
			Tips: []string{
				"Torso erecto durante el movimiento",
				"Rodilla delantera no pase el pie",
				"Rodilla trasera casi toca el suelo",
				"Paso amplio para énfasis en glúteos",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-12 por pierna", GoalStrength: "4 x 8", GoalEndurance: "3 x 15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 150, GoalEndurance: 60},
		},
		{
			ID:               "gemelo_maquina",
			Name:             "Elevación de Talones (Gemelos)",
			NameEn:           "Standing Calf Raise",
			PrimaryMuscles:   []string{"Gastrocnemio", "Sóleo"},
			SecondaryMuscles: []string{},
			Equipment:        []string{"máquina", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Rango completo: baja hasta el estiramiento máximo",
				"Pausa arriba por 1-2 segundos",
				"Movimiento lento y controlado",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "4-5 x 15-20", GoalStrength: "N/A", GoalEndurance: "3 x 25-30"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
	},
	"hombros": {
		{
			ID:               "press_militar",
			Name:             "Press Militar con Barra",
			NameEn:           "Overhead Press",
			PrimaryMuscles:   []string{"Deltoides Anterior", "Deltoides Lateral"},
			SecondaryMuscles: []string{"Trapecios", "Tríceps"},
			Equipment:        []string{"barra"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementCompound,
			Tips: []string{
				"De pie o sentado, ambas variantes son válidas",
				"Barra sube en línea recta sobre la cabeza",
				"Core apretado, no arquees la espalda baja",
				"Empuja la cabeza levemente al frente cuando la barra pasa",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "5 x 3-5", GoalEndurance: "3 x 15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 120, GoalStrength: 180, GoalEndurance: 90},
		},
		{
			ID:               "elevaciones_laterales",
			Name:             "Elevaciones Laterales",
			NameEn:           "Lateral Raises",
			PrimaryMuscles:   []string{"Deltoides Lateral"},
			SecondaryMuscles: []string{"Trapecio Superior"},
			Equipment:        []string{"mancuernas"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Ligera flexión en el codo",
				"Eleva hasta paralelo al suelo, no más",
				"El dedo meñique ligeramente más alto (pulgares abajo)",
				"No uses impulso de caderas",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-5 x 12-20", GoalStrength: "N/A", GoalEndurance: "3 x 20-25"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
		{
			ID:               "elevaciones_frontales",
			Name:             "Elevaciones Frontales",
			NameEn:           "Front Raises",
			PrimaryMuscles:   []string{"Deltoides Anterior"},
			SecondaryMuscles: []string{"Pectoral Mayor (cabeza clavicular)"},
			Equipment:        []string{"mancuernas", "barra", "disco"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Eleva hasta la altura de los ojos",
				"No osciles el torso",
				"Control total en la bajada",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3 x 12-15", GoalStrength: "N/A", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
	},
	"biceps": {
		{
			ID:               "curl_barra",
			Name:             "Curl con Barra",
			NameEn:           "Barbell Curl",
			PrimaryMuscles:   []string{"Bíceps Braquial"},
			SecondaryMuscles: []string{"Braquial", "Braquiorradial"},
			Equipment:        []string{"barra"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Codos pegados a los costados durante todo el movimiento",
				"Muñecas en posición neutra o supinada",
				"Contracción completa arriba, extensión completa abajo",
				"No uses el balanceo del cuerpo",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "4 x 5-8", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 120, GoalEndurance: 60},
		},
		{
			ID:               "curl_mancuernas",
			Name:             "Curl con Mancuernas",
			NameEn:           "Dumbbell Curl",
			PrimaryMuscles:   []string{"Bíceps Braquial"},
			SecondaryMuscles: []string{"Braquial", "Braquiorradial"},
			Equipment:        []string{"mancuernas"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Rota la palma hacia arriba al subir (supinación)",
				"Trabajo unilateral o alternado",
				"Rango completo de movimiento",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-12", GoalStrength: "4 x 6-8", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 120, GoalEndurance: 60},
		},
		{
			ID:               "curl_martillo",
			Name:             "Curl Martillo",
			NameEn:           "Hammer Curl",
			PrimaryMuscles:   []string{"Braquial", "Braquiorradial"},
			SecondaryMuscles: []string{"Bíceps Braquial"},
			Equipment:        []string{"mancuernas"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Agarre neutro (palmas hacia el cuerpo) durante todo el movimiento",
				"Trabaja tanto el bíceps como el braquial",
				"Excelente para engrosar el brazo",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-15", GoalStrength: "N/A", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 90, GoalEndurance: 60},
		},
		{
			ID:               "curl_concentrado",
			Name:             "Curl Concentrado",
			NameEn:           "Concentration Curl",
			PrimaryMuscles:   []string{"Bíceps Braquial (cabeza larga)"},
			SecondaryMuscles: []string{},
			Equipment:        []string{"mancuernas"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Codo apoyado en la parte interna del muslo",
				"Máxima contracción al llegar arriba",
				"Movimiento puro, sin balanceo",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3 x 12-15", GoalStrength: "N/A", GoalEndurance: "3 x 15-20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
	},
	"triceps": {
		{
			ID:               "press_frances",
			Name:             "Press Francés con Barra EZ",
			NameEn:           "Skull Crusher",
			PrimaryMuscles:   []string{"Tríceps (cabeza larga)"},
			SecondaryMuscles: []string{},
			Equipment:        []string{"barra EZ", "banco"},
			Difficulty:       ExperienceIntermediate,
			Movement:         MovementIsolation,
			Tips: []string{
				"Codos apuntan al techo, no se abren",
				"Baja la barra hacia la frente o detrás de la cabeza",
				"Extensión completa sin bloquear los codos",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "4 x 6-8", GoalEndurance: "3 x 15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 120, GoalEndurance: 60},
		},
		{
			ID:               "fondos_triceps",
			Name:             "Fondos para Tríceps",
			NameEn:           "Tricep Dips",
			PrimaryMuscles:   []string{"Tríceps"},
			SecondaryMuscles: []string{"Deltoides Anterior", "Pectoral"},
			Equipment:        []string{"banco", "paralelas"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementCompound,
			Tips: []string{
				"Torso recto para énfasis en tríceps",
				"Codos atrás, no se abren lateralmente",
				"Bajar hasta 90° en los codos",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 10-15", GoalStrength: "4 x 6-10", GoalEndurance: "3 x AMRAP"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 150, GoalEndurance: 60},
		},
		{
			ID:               "extension_polea",
			Name:             "Extensión de Tríceps en Polea",
			NameEn:           "Tricep Pushdown",
			PrimaryMuscles:   []string{"Tríceps"},
			SecondaryMuscles: []string{},
			Equipment:        []string{"polea", "gym"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"Codos pegados al cuerpo y fijos",
				"Extensión completa en el punto inferior",
				"Controla la subida (fase excéntrica)",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 12-15", GoalStrength: "N/A", GoalEndurance: "3 x 20"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
	},
	"abdomen": {
		{
			ID:               "plancha",
			Name:             "Plancha",
			NameEn:           "Plank",
			PrimaryMuscles:   []string{"Transverso Abdominal", "Recto Abdominal"},
			SecondaryMuscles: []string{"Deltoides", "Glúteos", "Cuádriceps"},
			Equipment:        []string{"cuerpo libre"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementStatic,
			Tips: []string{
				"Cuerpo en línea recta, sin elevar cadera",
				"Contrae abdomen y glúteos",
				"Respiración normal durante el hold",
				"Progresión: 30s → 60s → 90s → 120s+",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 30-60s", GoalStrength: "3 x 60-120s", GoalEndurance: "3 x AMRAP"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 60, GoalStrength: 60, GoalEndurance: 45},
		},
		{
			ID:               "crunch",
			Name:             "Crunch Abdominal",
			NameEn:           "Crunch",
			PrimaryMuscles:   []string{"Recto Abdominal"},
			SecondaryMuscles: []string{"Oblicuos"},
			Equipment:        []string{"cuerpo libre"},
			Difficulty:       ExperienceBeginner,
			Movement:         MovementIsolation,
			Tips: []string{
				"No jalones el cuello con las manos",
				"La zona lumbar permanece en el suelo",
				"Contrae el abdomen, no solo levantes la cabeza",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 15-25", GoalStrength: "N/A", GoalEndurance: "3 x 30"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 45, GoalStrength: 45, GoalEndurance: 30},
		},
		{
			ID:               "rueda_abs",
			Name:             "Rueda Abdominal (Ab Wheel)",
			NameEn:           "Ab Wheel Rollout",
			PrimaryMuscles:   []string{"Transverso Abdominal", "Recto Abdominal"},
			SecondaryMuscles: []string{"Dorsales", "Hombros"},
			Equipment:        []string{"rueda abdominal"},
			Difficulty:       ExperienceAdvanced,
			Movement:         MovementCompound,
			Tips: []string{
				"Comienza en rodillas si no tienes fuerza suficiente",
				"No arquees la espalda al ir al frente",
				"Regresa usando el abdomen, no los hombros",
			},
			SetsReps:    map[Goal]string{GoalHypertrophy: "3-4 x 8-12", GoalStrength: "4 x 6-10", GoalEndurance: "3 x 15"},
			RestSeconds: map[Goal]int{GoalHypertrophy: 90, GoalStrength: 120, GoalEndurance: 60},
		},
	},
}

// muscleGroups lists the catalog groups in presentation order.
var muscleGroups = []string{"pecho", "espalda", "piernas", "hombros", "biceps", "triceps", "abdomen"}

// MuscleGroups returns the muscle group identifiers in catalog order.
func MuscleGroups() []string {
	groups := make([]string, len(muscleGroups))
	copy(groups, muscleGroups)
	return groups
}

// ExercisesByGroup returns the catalog entries for a muscle group in catalog
// order. Unknown groups yield an empty slice.
func ExercisesByGroup(group string) []Exercise {
	exercises := make([]Exercise, len(catalog[group]))
	copy(exercises, catalog[group])
	return exercises
}

// AllExercises returns every catalog entry, groups in catalog order.
func AllExercises() []Exercise {
	var exercises []Exercise
	for _, group := range muscleGroups {
		exercises = append(exercises, catalog[group]...)
	}
	return exercises
}

// FindExercise looks up a catalog entry by ID.
func FindExercise(id string) (Exercise, bool) {
	for _, group := range muscleGroups {
		for _, exercise := range catalog[group] {
			if exercise.ID == id {
				return exercise, true
			}
		}
	}
	return Exercise{}, false
}
