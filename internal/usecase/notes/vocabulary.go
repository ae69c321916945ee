package notes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds every locale-specific word list the analyzer relies on.
// Matching against these lists is case- and accent-insensitive.
type Vocabulary struct {
	Headings HeadingVocabulary `yaml:"headings"`
	Prefixes PrefixVocabulary  `yaml:"prefixes"`
	Labels   LabelVocabulary   `yaml:"labels"`

	// Bullets are list glyphs stripped from the start of a line.
	Bullets []string `yaml:"bullets"`

	// HeaderNoise lists labels of document header lines ("Participants:")
	// that never carry content.
	HeaderNoise []string `yaml:"header_noise"`

	ActionVerbs       []string `yaml:"action_verbs"`
	ModalVerbs        []string `yaml:"modal_verbs"`
	OwnershipVerbs    []string `yaml:"ownership_verbs"`
	AssignmentMarkers []string `yaml:"assignment_markers"`

	Weekdays         []string `yaml:"weekdays"`
	Months           []string `yaml:"months"`
	RelativeDates    []string `yaml:"relative_dates"`
	DatePrepositions []string `yaml:"date_prepositions"`

	ContextConnectives []string `yaml:"context_connectives"`
	ImpactConnectives  []string `yaml:"impact_connectives"`

	QuestionMarkers []string `yaml:"question_markers"`
	UpcomingMarkers []string `yaml:"upcoming_markers"`

	// NameStopWords are capitalized words that are never a person's name
	// (pronouns, determiners, sentence openers).
	NameStopWords []string `yaml:"name_stop_words"`
}

// HeadingVocabulary lists the whole-line heading phrases of each zone
type HeadingVocabulary struct {
	Decisions []string `yaml:"decisions"`
	Actions   []string `yaml:"actions"`
	Upcoming  []string `yaml:"upcoming"`
	Questions []string `yaml:"questions"`
	// Ignored headings end the current zone; their lines go to General.
	Ignored []string `yaml:"ignored"`
}

// PrefixVocabulary lists statement labels ("Décision :", "TODO:") that mark
// a single line as belonging to a zone.
type PrefixVocabulary struct {
	Decisions []string `yaml:"decisions"`
	Actions   []string `yaml:"actions"`
	Upcoming  []string `yaml:"upcoming"`
	Questions []string `yaml:"questions"`
}

// LabelVocabulary lists field labels used for explicit metadata
type LabelVocabulary struct {
	Responsible []string `yaml:"responsible"`
	DueDate     []string `yaml:"due_date"`
	Context     []string `yaml:"context"`
	Impact      []string `yaml:"impact"`
}

// VocabularyFile is the on-disk form of a vocabulary extension. Lists are
// appended to the defaults unless Replace is set.
type VocabularyFile struct {
	Replace    bool       `yaml:"replace"`
	Vocabulary Vocabulary `yaml:"vocabulary"`
}

// DefaultVocabulary returns the built-in French-first vocabulary with
// English equivalents.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Headings: HeadingVocabulary{
			Decisions: []string{
				"décisions", "décision", "décisions prises", "décisions clés", "décisions validées",
				"décisions actées", "points validés", "arbitrages", "decisions", "decision",
				"key decisions", "decisions made",
			},
			Actions: []string{
				"actions", "action", "action items", "actions à réaliser", "actions à mener",
				"actions à suivre", "plan d'action", "tâches", "tâches à réaliser", "à faire",
				"todo", "to do", "to-do", "suivi des actions", "tasks", "next actions",
			},
			Upcoming: []string{
				"à venir", "prochaines étapes", "prochaine étape", "prochaine réunion",
				"prochains points", "points à venir", "suite", "suites", "perspectives",
				"next steps", "upcoming", "next meeting", "coming up",
			},
			Questions: []string{
				"questions", "questions ouvertes", "questions en suspens", "points ouverts",
				"points à clarifier", "à clarifier", "points en suspens", "open questions",
				"open points", "to clarify",
			},
			Ignored: []string{
				"participants", "présents", "absents", "ordre du jour", "notes",
				"compte rendu", "compte-rendu", "résumé", "synthèse", "discussion", "discussions",
				"points abordés", "agenda", "attendees", "summary", "background",
			},
		},
		Prefixes: PrefixVocabulary{
			Decisions: []string{"décision", "décisions", "décidé", "acté", "validé", "decision", "decisions", "decided", "agreed"},
			Actions:   []string{"action", "actions", "todo", "to do", "à faire", "tâche", "task", "ai"},
			Upcoming:  []string{"prochaine étape", "à venir", "next step", "upcoming"},
			Questions: []string{"question", "questions", "à clarifier", "à confirmer", "point ouvert", "open question", "tbd", "tbc"},
		},
		Labels: LabelVocabulary{
			Responsible: []string{
				"responsable", "responsables", "porteur", "pilote", "owner", "assigné à",
				"assignée à", "assigné", "qui", "who", "assignee", "resp",
			},
			DueDate: []string{
				"échéance", "date limite", "deadline", "délai", "due", "due date", "date",
				"quand", "when",
			},
			Context: []string{"contexte", "context", "pourquoi", "raison", "motif", "why", "rationale"},
			Impact:  []string{"impact", "impact potentiel", "impacts", "conséquence", "conséquences", "effet", "consequence"},
		},
		Bullets: []string{"-", "*", "+", "•", "◦", "▪", "▫", "‣", "·", "–", "—", "→", "►", "▸", ">", "✓", "✔", "☐", "☑", "☒"},
		HeaderNoise: []string{
			"participants", "présents", "présent", "absents", "excusés", "lieu", "heure",
			"animateur", "animatrice", "rédacteur", "rédactrice", "secrétaire", "objet",
			"réunion", "attendees", "location", "time", "subject", "title", "titre",
			"date de la réunion", "meeting date",
		},
		ActionVerbs: []string{
			"préparer", "envoyer", "valider", "organiser", "planifier", "rédiger", "contacter",
			"appeler", "relancer", "vérifier", "mettre", "finaliser", "créer", "corriger",
			"mettre à jour", "partager", "transmettre", "programmer", "réserver", "installer",
			"configurer", "déployer", "tester", "documenter", "analyser", "étudier", "chiffrer",
			"estimer", "compléter", "revoir", "relire", "présenter", "informer", "prévenir",
			"confirmer", "demander", "fournir", "livrer", "migrer", "nettoyer", "signer",
			"commander", "recruter", "former", "suivre", "faire", "écrire", "publier", "implémenter",
			"développer", "intégrer", "fixer", "caler", "inviter", "convoquer", "diffuser",
			"send", "prepare", "review", "schedule", "update", "write", "create", "fix", "check",
			"contact", "call", "follow up", "share", "draft", "book", "set up", "deploy", "test",
			"document", "finalize", "organize", "plan", "email", "ping", "investigate",
		},
		ModalVerbs: []string{
			"va", "vont", "doit", "doivent", "devra", "devront", "devrait", "devraient",
			"will", "should", "must", "needs to", "need to", "has to", "have to", "is going to",
			"are going to",
		},
		OwnershipVerbs: []string{
			"s'occupe", "s'occupera", "s'occupent", "s'en occupe", "s'en charge", "se charge",
			"se chargera", "interviendra", "prend en charge", "prendra en charge", "prépare",
			"préparera", "enverra", "envoie", "pilote", "pilotera", "gère", "gérera",
			"takes care", "will handle", "handles", "owns",
		},
		AssignmentMarkers: []string{
			"assigné à", "assignée à", "confié à", "confiée à", "attribué à", "attribuée à",
			"porté par", "pris en charge par", "assigned to", "owned by",
		},
		Weekdays: []string{
			"lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi", "dimanche",
			"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		},
		Months: []string{
			"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août",
			"septembre", "octobre", "novembre", "décembre",
			"january", "february", "march", "april", "june", "july", "august",
			"september", "october", "november", "december",
		},
		RelativeDates: []string{
			"la semaine prochaine", "semaine prochaine", "le mois prochain", "mois prochain",
			"l'année prochaine", "demain", "après-demain", "aujourd'hui", "ce soir", "ce matin",
			"cette semaine", "ce mois-ci", "en fin de semaine", "fin de semaine", "fin de mois",
			"fin du mois", "fin de journée", "fin du trimestre", "fin de trimestre", "fin du sprint",
			"fin de sprint", "prochain sprint", "au plus vite", "dès que possible", "asap",
			"la prochaine réunion", "prochaine réunion", "next week", "next month", "tomorrow",
			"today", "tonight", "this week", "end of week", "end of the week", "end of month",
			"end of the month", "end of quarter", "next sprint", "next meeting",
		},
		DatePrepositions: []string{
			"avant", "d'ici", "d'ici à", "d'ici le", "pour", "pour le", "au plus tard",
			"au plus tard le", "dès", "le", "jusqu'à", "jusqu'au", "à partir de", "à partir du",
			"en", "début", "courant", "by", "before", "until", "on", "due", "no later than",
		},
		ContextConnectives: []string{
			"parce que", "parce qu'", "car", "suite à", "suite au", "suite aux", "en raison de",
			"en raison du", "en raison des", "étant donné que", "vu que", "puisque", "afin de",
			"pour que", "dans le cadre de", "because", "due to", "since", "following", "given that",
		},
		ImpactConnectives: []string{
			"ce qui implique", "ce qui entraîne", "ce qui entraînera", "ce qui permet",
			"ce qui permettra", "ce qui va", "cela implique", "cela entraîne", "cela entraînera",
			"cela permettra", "cela permet", "ce qui impacte", "impactant", "entraînant",
			"which means", "which implies", "resulting in", "this means", "leading to",
		},
		QuestionMarkers: []string{
			"question", "à clarifier", "à confirmer", "à définir", "à déterminer", "point ouvert",
			"en suspens", "open question", "tbd", "tbc", "to be confirmed", "to be defined",
		},
		UpcomingMarkers: []string{
			"prochaine réunion", "prochaine étape", "prochaines étapes", "à venir",
			"prochain point", "prochain comité", "prochain rendez-vous", "next meeting",
			"next step", "next steps", "upcoming",
		},
		NameStopWords: []string{
			"le", "la", "les", "l'équipe", "un", "une", "des", "ce", "cet", "cette", "ces",
			"il", "elle", "ils", "elles", "on", "nous", "vous", "je", "tu", "tout", "tous",
			"chacun", "personne", "quelqu'un", "qui", "cela", "ceci", "ça", "si", "et", "ou",
			"mais", "donc", "puis", "alors", "ensuite", "demain", "aujourd'hui", "pour", "par",
			"avant", "après", "dès", "action", "actions", "décision", "question", "todo",
			"responsable", "équipe", "client", "projet", "the", "a", "an", "we", "they", "he",
			"she", "it", "i", "you", "someone", "everyone", "team", "this", "that", "then",
			"tomorrow", "today", "q1", "q2", "q3", "q4", "ok", "oui", "non", "yes", "no", "urgent",
			"important", "fait", "done", "wip", "priorité", "haute", "basse", "moyenne", "high",
			"medium", "low", "tbd", "tbc",
		},
	}
}

// Extend appends every list of other to v
func (v Vocabulary) Extend(other Vocabulary) Vocabulary {
	v.Headings.Decisions = appendUnique(v.Headings.Decisions, other.Headings.Decisions)
	v.Headings.Actions = appendUnique(v.Headings.Actions, other.Headings.Actions)
	v.Headings.Upcoming = appendUnique(v.Headings.Upcoming, other.Headings.Upcoming)
	v.Headings.Questions = appendUnique(v.Headings.Questions, other.Headings.Questions)
	v.Headings.Ignored = appendUnique(v.Headings.Ignored, other.Headings.Ignored)
	v.Prefixes.Decisions = appendUnique(v.Prefixes.Decisions, other.Prefixes.Decisions)
	v.Prefixes.Actions = appendUnique(v.Prefixes.Actions, other.Prefixes.Actions)
	v.Prefixes.Upcoming = appendUnique(v.Prefixes.Upcoming, other.Prefixes.Upcoming)
	v.Prefixes.Questions = appendUnique(v.Prefixes.Questions, other.Prefixes.Questions)
	v.Labels.Responsible = appendUnique(v.Labels.Responsible, other.Labels.Responsible)
	v.Labels.DueDate = appendUnique(v.Labels.DueDate, other.Labels.DueDate)
	v.Labels.Context = appendUnique(v.Labels.Context, other.Labels.Context)
	v.Labels.Impact = appendUnique(v.Labels.Impact, other.Labels.Impact)
	v.Bullets = appendUnique(v.Bullets, other.Bullets)
	v.HeaderNoise = appendUnique(v.HeaderNoise, other.HeaderNoise)
	v.ActionVerbs = appendUnique(v.ActionVerbs, other.ActionVerbs)
	v.ModalVerbs = appendUnique(v.ModalVerbs, other.ModalVerbs)
	v.OwnershipVerbs = appendUnique(v.OwnershipVerbs, other.OwnershipVerbs)
	v.AssignmentMarkers = appendUnique(v.AssignmentMarkers, other.AssignmentMarkers)
	v.Weekdays = appendUnique(v.Weekdays, other.Weekdays)
	v.Months = appendUnique(v.Months, other.Months)
	v.RelativeDates = appendUnique(v.RelativeDates, other.RelativeDates)
	v.DatePrepositions = appendUnique(v.DatePrepositions, other.DatePrepositions)
	v.ContextConnectives = appendUnique(v.ContextConnectives, other.ContextConnectives)
	v.ImpactConnectives = appendUnique(v.ImpactConnectives, other.ImpactConnectives)
	v.QuestionMarkers = appendUnique(v.QuestionMarkers, other.QuestionMarkers)
	v.UpcomingMarkers = appendUnique(v.UpcomingMarkers, other.UpcomingMarkers)
	v.NameStopWords = appendUnique(v.NameStopWords, other.NameStopWords)
	return v
}

// ParseVocabulary decodes a YAML vocabulary file and applies it on top of
// the default vocabulary.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var file VocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	if file.Replace {
		return file.Vocabulary, nil
	}
	return DefaultVocabulary().Extend(file.Vocabulary), nil
}

// LoadVocabulary reads a YAML vocabulary file. An empty path returns the
// default vocabulary.
func LoadVocabulary(path string) (Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return ParseVocabulary(data)
}

func appendUnique(base, extra []string) []string {
	if len(extra) == 0 {
		return base
	}
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, w := range list {
			key := foldText(w)
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
