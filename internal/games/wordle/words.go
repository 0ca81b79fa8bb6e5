package wordle

// Words are the possible solutions. Guesses are not checked against it.
var Words = []string{
	"APPLE", "BRICK", "GHOST", "LIGHT", "PLANT", "ROBOT", "SMILE", "TRACK", "WATER", "ZEBRA",
	"ABOUT", "ABOVE", "BRAVE", "BROWN", "CHAIR", "CHIEF", "CHINA", "CLEAN", "CLEAR", "CLIMB",
	"CLOCK", "CLOSE", "CLOUD", "COAST", "DANCE", "DEATH", "DEPTH", "DOUBT", "DRAFT", "DRAIN",
	"DREAM", "DRESS", "DRINK", "DRIVE", "EARTH", "EMPTY", "ENEMY", "ENTRY", "EQUAL", "ERROR",
	"EVENT", "FAITH", "FALSE", "FAULT", "FIELD", "FIGHT", "FINAL", "FIRST", "FLEET", "FLOOR",
	"FOCUS", "FORCE", "FRAME", "FRANK", "FRESH", "FRONT", "FRUIT", "GLASS", "GRACE", "GRADE",
	"GRAND", "GRANT", "GRASS", "GREAT", "GREEN", "GROSS", "GROUP", "GUARD", "GUESS", "GUIDE",
	"HAPPY", "HEART", "HEAVY", "HORSE", "HOTEL", "HOUSE", "HUMAN", "IMAGE", "INDEX", "INNER",
	"ISSUE", "JOINT", "JUDGE", "KNIFE", "LARGE", "LASER", "LATER", "LAUGH", "LAYER", "LEARN",
	"LEASE", "LEAST", "LEAVE", "LEGAL", "LEVEL", "LOGIC", "LOOSE", "LOWER", "LUCKY", "LUNCH",
	"MAGIC", "MAJOR", "MAKER", "MARCH", "MATCH", "METAL", "MINOR", "MINUS", "MIXED", "MODEL",
	"MONEY", "MONTH", "MORAL", "MOTOR", "MOUNT", "MOUSE", "MOUTH", "MUSIC", "NIGHT", "NOISE",
	"NORTH", "NOVEL", "NURSE", "OCEAN", "OFFER", "ORDER", "OTHER", "OUTER", "OWNER", "PAINT",
	"PANEL", "PAPER", "PARTY", "PEACE", "PHASE", "PHONE", "PIECE", "PILOT", "PLACE", "PLANE",
	"PLATE", "POINT", "POUND", "POWER", "PRESS", "PRICE", "PRIDE", "PRIME", "PRINT", "PRIOR",
	"PRIZE", "PROOF", "PROUD", "PROVE", "QUEEN", "QUICK", "QUIET", "QUITE", "RADIO", "RAISE",
	"RANGE", "RAPID", "RATIO", "REACH", "READY", "REFER", "RIGHT", "RIVER", "ROUND", "ROUTE",
	"ROYAL", "RURAL", "SCALE", "SCENE", "SCOPE", "SCORE", "SENSE", "SERVE", "SEVEN", "SHALL",
	"SHAPE", "SHARE", "SHARP", "SHEET", "SHELF", "SHELL", "SHIFT", "SHINE", "SHIRT", "SHOCK",
	"SHOOT", "SHORT", "SIGHT", "SILLY", "SINCE", "SIXTH", "SIXTY", "SKILL", "SLEEP", "SLIDE",
	"SMALL", "SMART", "SOLID", "SOLVE", "SORRY", "SOUND", "SOUTH", "SPACE", "SPARE", "SPEAK",
	"SPEED", "SPEND", "SPENT", "SPLIT", "SPOKE", "SPORT", "STAFF", "STAGE", "STAKE", "STAND",
	"START", "STATE", "STEAM", "STEEL", "STICK", "STILL", "STOCK", "STONE", "STOOD", "STORE",
	"STORM", "STORY", "STRIP", "STUCK", "STUDY", "STUFF", "STYLE", "SWEET", "TABLE", "TAKEN",
	"TASTE", "TEACH", "THANK", "THEIR", "THEME", "THERE", "THESE", "THICK", "THING", "THINK",
	"THIRD", "THOSE", "THREE", "THREW", "THROW", "TIGHT", "TITLE", "TODAY", "TOPIC", "TOTAL",
	"TOUCH", "TOUGH", "TOWER", "TRADE", "TRAIN", "TREAT", "TREND", "TRIAL", "TRIBE", "TRICK",
	"TRIED", "TROOP", "TRUCK", "TRULY", "TRUST", "TRUTH", "TWICE", "UNDER", "UNION", "UNITY",
	"UNTIL", "UPPER", "URBAN", "USAGE", "USUAL", "VALID", "VALUE", "VIDEO", "VIRUS", "VISIT",
	"VITAL", "VOCAL", "VOICE", "WASTE", "WATCH", "WHEEL", "WHERE", "WHICH", "WHILE", "WHITE",
	"WHOLE", "WHOSE", "WOMAN", "WORLD", "WORRY", "WORSE", "WORST", "WORTH", "WOULD", "WOUND",
	"WRITE", "WRONG", "WROTE", "YOUNG", "YOUTH",
}
