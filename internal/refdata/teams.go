package refdata

import "strconv"

// TeamDetail is one entry of the static team directory. The directory is
// keyed by canonical team name and never changes after process start.
type TeamDetail struct {
	TeamID    string `json:"team_id"`
	ShortCode string `json:"short_code"`
	APIID     int    `json:"api_id"`
	ImageURL  string `json:"image_url"`
}

// DefaultTeamDetail is returned for canonical names that are missing from the
// directory (typically unresolved sentinel names flowing through the pipeline).
var DefaultTeamDetail = TeamDetail{
	TeamID:    "N/A_ID",
	ShortCode: "N/A",
	APIID:     0,
	ImageURL:  "https://example.com/default_image.png",
}

const imageBase = "https://fantasyfootball.sgp1.cdn.digitaloceanspaces.com/cwc%20team%20logo/"

// TeamDetails maps canonical team name to its directory record.
var TeamDetails = map[string]TeamDetail{
	"Al Ahly FC":                  {TeamID: "67b8be4865db8d4ef5b05df6", ShortCode: "AHL", APIID: 460, ImageURL: imageBase + "Al%20Ahly%20FC%20round.png"},
	"Al Ain FC":                   {TeamID: "67b8be4c65db8d4ef5b05f00", ShortCode: "AAN", APIID: 7780, ImageURL: imageBase + "Al%20Ain%20FC%20round.png"},
	"Al Hilal SFC":                {TeamID: "67b8be4c65db8d4ef5b05ef8", ShortCode: "HIL", APIID: 7011, ImageURL: imageBase + "Al%20Hilal%20round.png"},
	"Atlético de Madrid":          {TeamID: "67b8be4c65db8d4ef5b05f03", ShortCode: "ATM", APIID: 7980, ImageURL: imageBase + "Atl%C3%A9tico%20de%20Madrid%20round.png"},
	"Auckland City FC":            {TeamID: "67b8be4965db8d4ef5b05e3d", ShortCode: "AFC", APIID: 1022, ImageURL: imageBase + "Auckland%20City%20FC%20round.png"},
	"SL Benfica":                  {TeamID: "67b8be4865db8d4ef5b05e12", ShortCode: "BEN", APIID: 605, ImageURL: imageBase + "SL%20Benfica%20round.png"},
	"CA Boca Juniors":             {TeamID: "67b8be4865db8d4ef5b05e0a", ShortCode: "BOC", APIID: 587, ImageURL: imageBase + "CA%20Boca%20Juniors%20round.png"},
	"Borussia Dortmund":           {TeamID: "67b8be4665db8d4ef5b05db2", ShortCode: "BVB", APIID: 68, ImageURL: imageBase + "Borussia%20Dortmund%20round.png"},
	"Botafogo FR":                 {TeamID: "67b8be4a65db8d4ef5b05e7f", ShortCode: "BOT", APIID: 2864, ImageURL: imageBase + "Botafogo%20round.png"},
	"Chelsea FC":                  {TeamID: "67b8be4565db8d4ef5b05d90", ShortCode: "CHE", APIID: 18, ImageURL: imageBase + "Chelsea%20FC%20round.png"},
	"Espérance Sportive de Tunis": {TeamID: "683e0419988d77e1048fd51c", ShortCode: "EST", APIID: 5832, ImageURL: imageBase + "Esp%C3%A9rance%20Sportive%20de%20Tunis%20round.png"},
	"FC Bayern München":           {TeamID: "67b8be4865db8d4ef5b05dfd", ShortCode: "BAY", APIID: 503, ImageURL: imageBase + "FC%20Bayern%20M%C3%BCnchen%20round.png"},
	"CR Flamengo":                 {TeamID: "67b8be4965db8d4ef5b05e3e", ShortCode: "FLA", APIID: 1024, ImageURL: imageBase + "CR%20Flamengo%20round.png"},
	"Fluminense FC":               {TeamID: "67b8be4965db8d4ef5b05e43", ShortCode: "FLU", APIID: 1095, ImageURL: imageBase + "Fluminense%20FC%20round.png"},
	"FC Internazionale Milano":    {TeamID: "67b8be4a65db8d4ef5b05e82", ShortCode: "INT", APIID: 2930, ImageURL: imageBase + "FC%20Internazionale%20Milano%20round.png"},
	"Inter Miami CF":              {TeamID: "67b8be4e65db8d4ef5b05f49", ShortCode: "MIA", APIID: 239235, ImageURL: imageBase + "Inter%20Miami%20CF%20round.png"},
	"Juventus FC":                 {TeamID: "67b8be4865db8d4ef5b05e15", ShortCode: "JUV", APIID: 625, ImageURL: imageBase + "Juventus%20FC%20round.png"},
	"LAFC":                        {TeamID: "683d905b988d77e1048fd503", ShortCode: "LAF", APIID: 147671, ImageURL: imageBase + "LAFC%20round.png"},
	"Mamelodi Sundowns FC":        {TeamID: "67b8be4c65db8d4ef5b05ef1", ShortCode: "MSF", APIID: 6755, ImageURL: imageBase + "Mamelodi%20Sundowns%20FC%20round.png"},
	"Manchester City FC":          {TeamID: "67b8be4565db8d4ef5b05d87", ShortCode: "MCI", APIID: 9, ImageURL: imageBase + "Manchester%20City%20FC%20round.png"},
	"CF Monterrey":                {TeamID: "67b8be4a65db8d4ef5b05e6f", ShortCode: "MON", APIID: 2662, ImageURL: imageBase + "CF%20Monterrey%20round.png"},
	"CF Pachuca":                  {TeamID: "67b8be4d65db8d4ef5b05f17", ShortCode: "PAC", APIID: 10036, ImageURL: imageBase + "CF%20Pachuca%20round.png"},
	"SE Palmeiras":                {TeamID: "67b8be4b65db8d4ef5b05e92", ShortCode: "PAL", APIID: 3422, ImageURL: imageBase + "SE%20Palmeiras%20round.png"},
	"Paris Saint-Germain":         {TeamID: "67b8be4865db8d4ef5b05e0c", ShortCode: "PSG", APIID: 591, ImageURL: imageBase + "Paris%20Saint-Germain%20round.png"},
	"FC Porto":                    {TeamID: "67b8be4865db8d4ef5b05e1b", ShortCode: "POR", APIID: 652, ImageURL: imageBase + "FC%20Porto%20round.png"},
	"Real Madrid CF":              {TeamID: "67b8be4b65db8d4ef5b05e95", ShortCode: "RMA", APIID: 3468, ImageURL: imageBase + "Real%20Madrid%20C.%20F.%20round.png"},
	"CA River Plate":              {TeamID: "67b8be4d65db8d4ef5b05f16", ShortCode: "RIV", APIID: 10002, ImageURL: imageBase + "CA%20River%20Plate%20round.png"},
	"FC Salzburg":                 {TeamID: "67b8be4565db8d4ef5b05da6", ShortCode: "SAL", APIID: 49, ImageURL: imageBase + "FC%20Salzburg%20round.png"},
	"Seattle Sounders FC":         {TeamID: "67b8be4a65db8d4ef5b05e6e", ShortCode: "SEA", APIID: 2649, ImageURL: imageBase + "Seattle%20Sounders%20FC%20round.png"},
	"Ulsan HD FC":                 {TeamID: "67b8be4c65db8d4ef5b05ed6", ShortCode: "UHD", APIID: 5839, ImageURL: imageBase + "Ulsan%20HD%20round.png"},
	"Urawa Red Diamonds":          {TeamID: "67b8be4765db8d4ef5b05dd3", ShortCode: "URD", APIID: 280, ImageURL: imageBase + "Urawa%20Red%20Diamonds%20round.png"},
	"Wydad AC":                    {TeamID: "67b8be4a65db8d4ef5b05e7e", ShortCode: "WAC", APIID: 2846, ImageURL: imageBase + "Wydad%20AC%20round.png"},
}

// teamAliases maps observed spellings from the odds feeds and the fixture
// schedule to canonical team names. Self-mappings and numeric external-id
// aliases are added by AliasTable, not listed here.
var teamAliases = map[string]string{
	"Real Madrid":                   "Real Madrid CF",
	"Manchester City":               "Manchester City FC",
	"Man City":                      "Manchester City FC",
	"Bayern Munich":                 "FC Bayern München",
	"Bayern":                        "FC Bayern München",
	"PSG":                           "Paris Saint-Germain",
	"Paris SG":                      "Paris Saint-Germain",
	"Paris Saint Germain":           "Paris Saint-Germain",
	"Inter":                         "FC Internazionale Milano",
	"Inter Milan":                   "FC Internazionale Milano",
	"Chelsea":                       "Chelsea FC",
	"Atl. Madrid":                   "Atlético de Madrid",
	"Atletico Madrid":               "Atlético de Madrid",
	"Atl Madrid":                    "Atlético de Madrid",
	"Atlético Madrid":               "Atlético de Madrid",
	"Dortmund":                      "Borussia Dortmund",
	"Juventus":                      "Juventus FC",
	"Porto":                         "FC Porto",
	"Flamengo RJ":                   "CR Flamengo",
	"Flamengo":                      "CR Flamengo",
	"Regatas Flamengo RJ":           "CR Flamengo",
	"Benfica":                       "SL Benfica",
	"Palmeiras":                     "SE Palmeiras",
	"Sociedade Esportiva Palmeiras": "SE Palmeiras",
	"Boca Juniors":                  "CA Boca Juniors",
	"River Plate":                   "CA River Plate",
	"CA River Plate BA":             "CA River Plate",
	"Botafogo RJ":                   "Botafogo FR",
	"Botafogo":                      "Botafogo FR",
	"Botafogo de Futebol e Regatas": "Botafogo FR",
	"Fluminense":                    "Fluminense FC",
	"Fluminense Football Club":      "Fluminense FC",
	"Al Hilal":                      "Al Hilal SFC",
	"Al Hilal Riyadh":               "Al Hilal SFC",
	"Al-Hilal":                      "Al Hilal SFC",
	"Inter Miami":                   "Inter Miami CF",
	"Salzburg":                      "FC Salzburg",
	"Red Bull Salzburg":             "FC Salzburg",
	"Los Angeles FC":                "LAFC",
	"Seattle Sounders":              "Seattle Sounders FC",
	"Al Ahly":                       "Al Ahly FC",
	"Al Ahly SC":                    "Al Ahly FC",
	"Pachuca":                       "CF Pachuca",
	"Urawa Reds":                    "Urawa Red Diamonds",
	"Ulsan Hyundai":                 "Ulsan HD FC",
	"Ulsan HD":                      "Ulsan HD FC",
	"Ulsan Hyundai FC":              "Ulsan HD FC",
	"Al Ain":                        "Al Ain FC",
	"Al Ain Abu Dhabi":              "Al Ain FC",
	"Monterrey":                     "CF Monterrey",
	"Esperance Tunis":               "Espérance Sportive de Tunis",
	"ES Tunis":                      "Espérance Sportive de Tunis",
	"Wydad Athletic":                "Wydad AC",
	"Wydad Casablanca":              "Wydad AC",
	"Wydad AC Casablanca":           "Wydad AC",
	"Mamelodi Sundowns":             "Mamelodi Sundowns FC",
	"Auckland City":                 "Auckland City FC",
}

// AliasTable returns a fresh alias table seeded with the static aliases,
// a self-mapping for every directory team, and a numeric alias for every
// external API id. Callers own the returned map.
func AliasTable() map[string]string {
	table := make(map[string]string, len(teamAliases)+2*len(TeamDetails))
	for alias, canonical := range teamAliases {
		table[alias] = canonical
	}
	for name, detail := range TeamDetails {
		if _, ok := table[name]; !ok {
			table[name] = name
		}
		if detail.APIID > 0 {
			table[strconv.Itoa(detail.APIID)] = name
		}
	}
	return table
}

// DefensivePositions are the position labels that qualify a player for
// clean-sheet attribution.
var DefensivePositions = []string{
	"Goalkeeper",
	"Centre-Back",
	"Left-Back",
	"Right-Back",
	"Sweeper",
	"Defender",
}
