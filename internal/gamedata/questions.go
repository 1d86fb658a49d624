package gamedata

// SortingOption is one answer with a weight per house, indexed like
// domain.Houses: [Gryffindor, Hufflepuff, Ravenclaw, Slytherin].
type SortingOption struct {
	Label  string
	Points [4]int
}

// SortingQuestion is one of the ten fixed sorting questions.
type SortingQuestion struct {
	ID       int
	Question string
	Options  [4]SortingOption
}

// SortingQuestions are presented in order; the per-question option order is
// shuffled at presentation time by the sorting service.
var SortingQuestions = []SortingQuestion{
	{
		ID:       1,
		Question: "¿Qué cualidad valoras más?",
		Options: [4]SortingOption{
			{Label: "Valentía y coraje", Points: [4]int{3, 0, 1, 0}},
			{Label: "Lealtad y justicia", Points: [4]int{0, 3, 0, 1}},
			{Label: "Sabiduría e inteligencia", Points: [4]int{0, 1, 3, 0}},
			{Label: "Astucia y ambición", Points: [4]int{1, 0, 0, 3}},
		},
	},
	{
		ID:       2,
		Question: "Si encontraras un objeto perdido, ¿qué harías?",
		Options: [4]SortingOption{
			{Label: "Lo devolvería inmediatamente al dueño", Points: [4]int{1, 3, 0, 0}},
			{Label: "Lo investigaría para entender su valor", Points: [4]int{0, 0, 3, 1}},
			{Label: "Lo usaría para ayudar a otros", Points: [4]int{2, 2, 0, 0}},
			{Label: "Lo usaría para mi beneficio", Points: [4]int{0, 0, 1, 3}},
		},
	},
	{
		ID:       3,
		Question: "¿Qué te motiva más?",
		Options: [4]SortingOption{
			{Label: "Proteger a los que amo", Points: [4]int{3, 1, 0, 1}},
			{Label: "Ser justo y ayudar a todos", Points: [4]int{1, 3, 0, 0}},
			{Label: "Aprender y descubrir la verdad", Points: [4]int{0, 0, 3, 1}},
			{Label: "Alcanzar mis objetivos", Points: [4]int{0, 0, 1, 3}},
		},
	},
	{
		ID:       4,
		Question: "En una situación difícil, ¿cómo reaccionas?",
		Options: [4]SortingOption{
			{Label: "Actúo sin pensar, confiando en mi instinto", Points: [4]int{3, 0, 0, 1}},
			{Label: "Busco una solución que beneficie a todos", Points: [4]int{1, 3, 0, 0}},
			{Label: "Analizo todas las opciones antes de decidir", Points: [4]int{0, 0, 3, 1}},
			{Label: "Evalúo qué me beneficia más", Points: [4]int{0, 0, 1, 3}},
		},
	},
	{
		ID:       5,
		Question: "¿Qué tipo de amistad prefieres?",
		Options: [4]SortingOption{
			{Label: "Amigos valientes que me apoyen", Points: [4]int{3, 1, 0, 0}},
			{Label: "Amigos leales y confiables", Points: [4]int{1, 3, 0, 0}},
			{Label: "Amigos inteligentes con quienes debatir", Points: [4]int{0, 0, 3, 1}},
			{Label: "Amigos ambiciosos que compartan mis metas", Points: [4]int{0, 0, 1, 3}},
		},
	},
	{
		ID:       6,
		Question: "¿Qué harías si vieras una injusticia?",
		Options: [4]SortingOption{
			{Label: "Intervendría inmediatamente", Points: [4]int{3, 1, 0, 0}},
			{Label: "Buscaría una solución pacífica", Points: [4]int{1, 3, 0, 0}},
			{Label: "Analizaría la situación primero", Points: [4]int{0, 0, 3, 1}},
			{Label: "Evaluaría si me conviene intervenir", Points: [4]int{0, 0, 1, 3}},
		},
	},
	{
		ID:       7,
		Question: "¿Qué te define mejor?",
		Options: [4]SortingOption{
			{Label: "Soy audaz y no temo los desafíos", Points: [4]int{3, 0, 0, 1}},
			{Label: "Soy trabajador y perseverante", Points: [4]int{0, 3, 1, 0}},
			{Label: "Soy curioso y siempre quiero aprender", Points: [4]int{0, 1, 3, 0}},
			{Label: "Soy determinado y sé lo que quiero", Points: [4]int{1, 0, 0, 3}},
		},
	},
	{
		ID:       8,
		Question: "¿Qué prefieres hacer en tu tiempo libre?",
		Options: [4]SortingOption{
			{Label: "Aventuras y actividades emocionantes", Points: [4]int{3, 0, 0, 1}},
			{Label: "Ayudar a otros o trabajar en proyectos", Points: [4]int{1, 3, 0, 0}},
			{Label: "Leer, estudiar o investigar", Points: [4]int{0, 0, 3, 1}},
			{Label: "Planificar y trabajar en mis objetivos", Points: [4]int{0, 0, 1, 3}},
		},
	},
	{
		ID:       9,
		Question: "¿Qué valoras más en una persona?",
		Options: [4]SortingOption{
			{Label: "Coraje y determinación", Points: [4]int{3, 0, 1, 0}},
			{Label: "Honestidad y bondad", Points: [4]int{0, 3, 0, 1}},
			{Label: "Inteligencia y creatividad", Points: [4]int{0, 1, 3, 0}},
			{Label: "Ambición y astucia", Points: [4]int{1, 0, 0, 3}},
		},
	},
	{
		ID:       10,
		Question: "¿Cuál es tu mayor miedo?",
		Options: [4]SortingOption{
			{Label: "Ser cobarde o no estar a la altura", Points: [4]int{3, 0, 0, 1}},
			{Label: "Fallar a quienes confían en mí", Points: [4]int{1, 3, 0, 0}},
			{Label: "Ser ignorante o no entender algo", Points: [4]int{0, 0, 3, 1}},
			{Label: "No alcanzar mis metas", Points: [4]int{0, 0, 1, 3}},
		},
	},
}
