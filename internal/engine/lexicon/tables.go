package lexicon

// builtinTables is the default bilingual (Spanish/English) lexicon. The app's
// user base writes mostly Spanish, so Spanish entries come first in each list.
//
// Word-list entries are matched leet-aware and substring-based after
// normalization; keep entries long enough not to collide with innocent words
// (e.g. no two-letter entries).
var builtinTables = Tables{
	Toxic: []string{
		"idiota", "imbecil", "estupido", "estupida", "asqueroso", "asquerosa",
		"patetico", "patetica", "basura", "escoria", "repugnante", "inutil",
		"muerete", "odioso", "odiosa",
		"idiot", "stupid", "moron", "pathetic", "disgusting", "worthless",
		"loser", "creep", "trash",
	},
	Vulgar: []string{
		"mierda", "joder", "carajo", "pendejo", "pendeja", "cabron", "cabrona",
		"gilipollas", "puta", "puto",
		"fuck", "shit", "bitch", "asshole", "dickhead",
	},
	Positive: []string{
		"feliz", "amor", "genial", "increible", "maravilloso", "maravillosa",
		"alegre", "divertido", "divertida", "encanta", "disfrutar", "gracias",
		"bonito", "bonita", "ilusion", "sonreir",
		"happy", "love", "great", "amazing", "wonderful", "enjoy", "awesome",
		"grateful", "excited", "fun",
	},
	Negative: []string{
		"triste", "horrible", "terrible", "aburrido", "aburrida", "deprimido",
		"deprimida", "miedo", "soledad", "fatal", "odio", "desastre",
		"sad", "horrible", "terrible", "boring", "awful", "depressed",
		"lonely", "angry", "hate", "miserable",
	},
	Financial: []string{
		"banco", "cuenta bancaria", "tarjeta", "bitcoin", "cripto",
		"transferencia", "inversion", "prestamo", "paypal",
		"bank account", "credit card", "crypto", "transfer", "investment",
		"loan", "wire money",
	},

	Aggressive: []string{
		`(?i)\bte voy a (matar|pegar|golpear|destrozar)\b`,
		`(?i)\b(voy a matarte|i('ll| will) (kill|hurt|destroy) you)\b`,
		`(?i)\b(muerete|kill yourself|kys)\b`,
		`(?i)\bodio a (los|las|todos|todas)\b`,
		`(?i)\bi hate (all|every)\b`,
	},
	Commercial: []string{
		// money promises
		`(?i)\b(gana dinero|dinero (gratis|facil|fácil)|make money|earn (money|cash)|ingresos extra)\b`,
		// freebies and prizes
		`(?i)\b(gratis|free money|giveaway|regalo|premio|has ganado|you won)\b`,
		// links
		`(?i)(https?://|www\.)`,
		// commerce
		`(?i)\b(oferta|descuento|promocion|promoción|compra ya|buy now|limited offer|venta)\b`,
		// audience farming
		`(?i)\b(sigueme|sígueme|follow me|suscribete|suscríbete|subscribe)\b`,
	},
	Explicit: []string{
		`(?i)\b(sexo|sexual|xxx|porno?|nudes?|desnudo|desnuda|desnudos|desnudas)\b`,
		`(?i)\b(onlyfans|contenido (para )?adultos|adult content|18\+)\b`,
		`(?i)\b(fotos (intimas|íntimas|privadas)|intimate (pics|photos))\b`,
	},
	Phishing: []string{
		`(?i)\b(verifica tu cuenta|verify your account|confirma tus datos|confirm your details)\b`,
		`(?i)\b(haz clic (aqui|aquí)|click (here|aqui)|pincha (aqui|aquí))\b`,
		`(?i)\b(urgente|urgent|actua ahora|act(úa)? now|ultima oportunidad|last chance)\b`,
	},

	URL:     `(?i)(https?://[^\s]+|www\.[^\s]+|\b[a-z0-9-]+\.(com|net|org|es|io|me)\b[^\s]*)`,
	Contact: `(?i)(\+?\d[\d\s.-]{7,}\d|\b(whatsapp|wasap|telegram|snapchat)\b|\binsta(gram)?\s*[:@])`,
	Abbreviation: `(?i)\b(xq|pq|tqm|ntp|tmb|xfa|bff|lol|omg|wtf|idk|plz|thx|asap|` +
		`q|k|d|x)\b`,

	Disposable: []string{
		`(?i)@(mailinator|guerrillamail|10minutemail|yopmail|tempmail|trashmail|getnada)\.`,
		`(?i)^(test|fake|asdf|qwerty|prueba|usuario)\d*@`,
		`(?i)@(test|example|invalid)\.(com|org|net)$`,
	},
	GenericBios: []string{
		"soy una persona normal",
		"me gusta divertirme",
		"no se que poner",
		"no sé qué poner",
		"solo estoy mirando",
		"preguntame",
		"pregúntame",
		"just ask",
		"simple person",
		"here for a good time",
		"new here",
	},

	Traits: map[string][]string{
		"openness": {
			"arte", "viajar", "viajes", "aventura", "curioso", "curiosa",
			"creativo", "creativa", "musica", "música", "cultura", "aprender",
			"explorar", "leer", "idiomas",
			"art", "travel", "adventure", "curious", "creative", "music",
			"culture", "learn", "explore", "reading",
		},
		"conscientiousness": {
			"trabajo", "disciplina", "organizado", "organizada", "metas",
			"responsable", "puntual", "planificar", "esfuerzo", "constancia",
			"work", "discipline", "organized", "goals", "responsible",
			"planning", "career", "ambitious",
		},
		"extraversion": {
			"fiesta", "fiestas", "amigos", "social", "salir", "bailar",
			"gente", "conocer", "hablar", "energia", "energía",
			"party", "friends", "social", "dancing", "people", "outgoing",
			"meeting", "energy",
		},
		"agreeableness": {
			"amable", "ayudar", "familia", "compartir", "respeto", "empatia",
			"empatía", "carinoso", "cariñoso", "generoso", "generosa",
			"kind", "helping", "family", "sharing", "respect", "empathy",
			"caring", "generous",
		},
		"emotional_stability": {
			"tranquilo", "tranquila", "paz", "equilibrio", "meditacion",
			"meditación", "yoga", "calma", "relajado", "relajada", "serenidad",
			"calm", "peace", "balance", "meditation", "relaxed", "mindful",
			"grounded",
		},
		"lifestyle_openness": {
			"deporte", "gimnasio", "naturaleza", "senderismo", "cocinar",
			"probar", "nuevo", "nueva", "montaña", "montana", "espontaneo",
			"espontánea",
			"sport", "nature", "hiking", "cooking", "trying", "outdoors",
			"spontaneous", "active",
		},
		"communication": {
			"conversar", "conversacion", "conversación", "escuchar",
			"escribir", "debatir", "contar", "historias", "dialogo", "diálogo",
			"talking", "listening", "writing", "conversation", "storytelling",
			"debate",
		},
		"discretion": {
			"privado", "privada", "discreto", "discreta", "reservado",
			"reservada", "intimo", "íntimo", "hogar", "lectura", "tranquilidad",
			"private", "discreet", "reserved", "quiet", "homebody",
			"introvert",
		},
	},

	Lifestyle: map[string][]string{
		"deporte": {
			"deporte", "gimnasio", "correr", "futbol", "fútbol", "fitness",
			"yoga", "natacion", "natación",
			"gym", "running", "sports", "workout",
		},
		"viajes": {
			"viajar", "viajes", "aventura", "playa", "montaña", "montana",
			"mochilero", "mochilera",
			"travel", "trips", "backpacking", "beach",
		},
		"arte": {
			"arte", "musica", "música", "cine", "pintura", "teatro",
			"fotografia", "fotografía", "conciertos",
			"art", "music", "movies", "film", "photography", "concerts",
		},
		"gastronomia": {
			"cocinar", "comida", "gastronomia", "gastronomía", "restaurantes",
			"vino", "cafe", "café",
			"cooking", "food", "wine", "foodie", "coffee",
		},
		"naturaleza": {
			"naturaleza", "senderismo", "camping", "animales", "plantas",
			"mascotas",
			"nature", "hiking", "outdoors", "pets", "gardening",
		},
	},

	Intents: map[string][]string{
		"serious": {
			"relacion seria", "relación seria", "algo serio", "compromiso",
			"estable", "largo plazo", "pareja",
			"serious", "commitment", "long term", "relationship",
		},
		"casual": {
			"casual", "sin compromiso", "divertirme", "pasarlo bien",
			"sin etiquetas", "fluir",
			"nothing serious", "casual", "fun", "open minded",
		},
		"friendship": {
			"amistad", "amigos", "conocer gente", "compañia", "compañía",
			"friends", "friendship", "meet people",
		},
		"marriage": {
			"matrimonio", "casarme", "casarse", "formar una familia", "boda",
			"marriage", "marry", "settle down", "start a family",
		},
	},

	Stopwords: []string{
		"que", "para", "con", "una", "uno", "los", "las", "del", "por",
		"como", "mas", "más", "pero", "sus", "este", "esta", "esto", "soy",
		"eres", "estoy", "tengo", "hay", "muy", "todo", "toda", "cuando",
		"donde", "dónde", "porque", "también", "tambien", "gusta", "busco",
		"the", "and", "for", "with", "that", "this", "have", "from", "your",
		"about", "just", "like", "love", "what", "when", "where", "looking",
		"someone", "person",
	},
}
