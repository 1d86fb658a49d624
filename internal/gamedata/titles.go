package gamedata

// LevelTitle maps a level band to a character title.
type LevelTitle struct {
	MinLevel int
	MaxLevel int
	Title    string
}

// DefaultTitle is returned for levels outside every band.
const DefaultTitle = "Estudiante"

// LevelTitles covers levels 1..100 in ten fixed bands (the last band is the
// single level 100).
var LevelTitles = []LevelTitle{
	{1, 10, "Estudiante de Primer Año"},
	{11, 20, "Estudiante de Segundo Año"},
	{21, 30, "Estudiante de Tercer Año"},
	{31, 40, "Estudiante de Cuarto Año"},
	{41, 50, "Estudiante de Quinto Año"},
	{51, 60, "Estudiante de Sexto Año"},
	{61, 70, "Estudiante de Séptimo Año"},
	{71, 80, "Mago Graduado"},
	{81, 90, "Mago Experimentado"},
	{91, 99, "Mago Maestro"},
	{100, 100, "Archimago Legendario"},
}

// TitleForLevel returns the title for a level.
func TitleForLevel(level int) string {
	for _, t := range LevelTitles {
		if level >= t.MinLevel && level <= t.MaxLevel {
			return t.Title
		}
	}
	return DefaultTitle
}
