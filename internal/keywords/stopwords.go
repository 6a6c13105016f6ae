package keywords

// stopWords are function words, common verbs, adjectives and adverbs that are never topics.
// Contractions appear without apostrophes, matching utils.Tokenize.
var stopWords = []string{
	// pronouns and determiners
	"this", "that", "these", "those", "they", "them", "their", "theirs", "there",
	"what", "which", "whom", "whose", "with", "your", "yours", "mine", "ours",
	"myself", "yourself", "himself", "herself", "itself", "ourselves", "themselves",
	"some", "someone", "something", "somebody", "anyone", "anything", "anybody",
	"everyone", "everything", "everybody", "nothing", "nobody", "each", "every",
	"other", "another", "such", "both", "many", "much", "more", "most", "less",
	"least", "few", "several", "thing", "things", "stuff",
	// contractions
	"its", "dont", "cant", "wont", "isnt", "arent", "wasnt", "werent", "didnt",
	"doesnt", "havent", "hasnt", "hadnt", "couldnt", "wouldnt", "shouldnt", "youre",
	"theyre", "were", "ive", "youve", "weve", "theyve", "ill", "youll", "well",
	"theyll", "shes", "hes", "thats", "whats", "theres", "lets",
	// prepositions and conjunctions
	"about", "above", "after", "again", "against", "along", "among", "around",
	"because", "before", "behind", "below", "beneath", "beside", "between",
	"beyond", "down", "during", "except", "from", "inside", "into", "near",
	"onto", "outside", "over", "since", "than", "then", "through", "throughout",
	"till", "toward", "towards", "under", "until", "upon", "when", "where",
	"whereas", "whether", "while", "within", "without", "also", "although",
	"though", "unless",
	// auxiliaries and common verbs
	"have", "has", "had", "having", "been", "being", "will", "would", "shall",
	"should", "could", "might", "must", "does", "doing", "done", "said", "says",
	"feel", "feels", "feeling", "felt", "think", "thinks", "thought", "know",
	"knows", "knew", "want", "wants", "wanted", "need", "needs", "needed", "make",
	"makes", "made", "take", "takes", "took", "come", "comes", "came", "going",
	"goes", "went", "gone", "getting", "gets", "seem", "seems", "seemed", "keep",
	"keeps", "kept", "give", "gives", "gave", "tell", "tells", "told", "look",
	"looks", "looked", "like", "liked", "likes", "talk", "talking", "talked",
	"just", "really", "very", "quite", "pretty", "rather", "even", "still",
	"always", "never", "often", "sometimes", "maybe", "perhaps", "already",
	"almost", "anymore", "here", "only", "very", "too", "much", "now", "right",
	"back", "away", "lately", "since", "kind", "sort", "somewhat", "slightly",
	"extremely", "incredibly", "absolutely", "completely", "totally", "fairly",
	// common adjectives
	"good", "bad", "better", "best", "worse", "worst", "great", "little", "big",
	"same", "different", "sure", "able", "last", "next", "long", "hard", "easy",
	"okay", "fine", "real", "whole", "last", "first", "second", "own",
	"terrible", "awful", "horrible", "amazing", "awesome", "wonderful", "nice",
	"tired", "scared", "afraid",
	// conversational filler
	"hello", "thanks", "thank", "please", "yeah", "sorry", "today",
}
