package format

// Matchup tables for the Swedish pair formats. Every entry is
// singles(round, court, pairA, pairB) in seeds. Seeds 1 and 2 meet in the last round.

// A single best-of-5 matchup.
var swedishPairs2 = []Entry{
	singles(1, 1, 1, 2),
}

var swedishPairs3 = []Entry{
	singles(1, 1, 2, 3),
	singles(2, 1, 1, 3),
	singles(3, 1, 1, 2),
}

var swedishPairs4 = []Entry{
	singles(1, 1, 1, 4),
	singles(1, 2, 2, 3),

	singles(2, 1, 1, 3),
	singles(2, 2, 2, 4),

	singles(3, 1, 1, 2),
	singles(3, 2, 3, 4),
}

var swedishPairs5 = []Entry{
	singles(1, 1, 2, 5),
	singles(1, 2, 3, 4),

	singles(2, 1, 1, 5),
	singles(2, 2, 2, 3),

	singles(3, 1, 1, 4),
	singles(3, 2, 3, 5),

	singles(4, 1, 1, 3),
	singles(4, 2, 2, 4),

	singles(5, 1, 1, 2),
	singles(5, 2, 4, 5),
}

var swedishPairs6 = []Entry{
	singles(1, 1, 1, 6),
	singles(1, 2, 2, 5),
	singles(1, 3, 3, 4),

	singles(2, 1, 1, 5),
	singles(2, 2, 2, 3),
	singles(2, 3, 4, 6),

	singles(3, 1, 1, 4),
	singles(3, 2, 2, 6),
	singles(3, 3, 3, 5),

	singles(4, 1, 1, 3),
	singles(4, 2, 2, 4),
	singles(4, 3, 5, 6),

	singles(5, 1, 1, 2),
	singles(5, 2, 3, 6),
	singles(5, 3, 4, 5),
}

var swedishPairs7 = []Entry{
	singles(1, 1, 2, 7),
	singles(1, 2, 3, 6),
	singles(1, 3, 4, 5),

	singles(2, 1, 1, 7),
	singles(2, 2, 2, 5),
	singles(2, 3, 3, 4),

	singles(3, 1, 1, 6),
	singles(3, 2, 2, 3),
	singles(3, 3, 5, 7),

	singles(4, 1, 1, 5),
	singles(4, 2, 3, 7),
	singles(4, 3, 4, 6),

	singles(5, 1, 1, 4),
	singles(5, 2, 2, 6),
	singles(5, 3, 3, 5),

	singles(6, 1, 1, 3),
	singles(6, 2, 2, 4),
	singles(6, 3, 6, 7),

	singles(7, 1, 1, 2),
	singles(7, 2, 4, 7),
	singles(7, 3, 5, 6),
}

var swedishPairs8 = []Entry{
	singles(1, 1, 1, 8),
	singles(1, 2, 2, 7),
	singles(1, 3, 3, 6),
	singles(1, 4, 4, 5),

	singles(2, 1, 1, 7),
	singles(2, 2, 2, 5),
	singles(2, 3, 3, 4),
	singles(2, 4, 6, 8),

	singles(3, 1, 1, 6),
	singles(3, 2, 2, 3),
	singles(3, 3, 4, 8),
	singles(3, 4, 5, 7),

	singles(4, 1, 1, 5),
	singles(4, 2, 2, 8),
	singles(4, 3, 3, 7),
	singles(4, 4, 4, 6),

	singles(5, 1, 1, 4),
	singles(5, 2, 2, 6),
	singles(5, 3, 3, 5),
	singles(5, 4, 7, 8),

	singles(6, 1, 1, 3),
	singles(6, 2, 2, 4),
	singles(6, 3, 5, 8),
	singles(6, 4, 6, 7),

	singles(7, 1, 1, 2),
	singles(7, 2, 3, 8),
	singles(7, 3, 4, 7),
	singles(7, 4, 5, 6),
}

var swedishPairs9 = []Entry{
	singles(1, 1, 2, 9),
	singles(1, 2, 3, 8),
	singles(1, 3, 4, 7),
	singles(1, 4, 5, 6),

	singles(2, 1, 1, 9),
	singles(2, 2, 2, 7),
	singles(2, 3, 3, 6),
	singles(2, 4, 4, 5),

	singles(3, 1, 1, 8),
	singles(3, 2, 2, 5),
	singles(3, 3, 3, 4),
	singles(3, 4, 7, 9),

	singles(4, 1, 1, 7),
	singles(4, 2, 2, 3),
	singles(4, 3, 5, 9),
	singles(4, 4, 6, 8),

	singles(5, 1, 1, 6),
	singles(5, 2, 3, 9),
	singles(5, 3, 4, 8),
	singles(5, 4, 5, 7),

	singles(6, 1, 1, 5),
	singles(6, 2, 2, 8),
	singles(6, 3, 3, 7),
	singles(6, 4, 4, 6),

	singles(7, 1, 1, 4),
	singles(7, 2, 2, 6),
	singles(7, 3, 3, 5),
	singles(7, 4, 8, 9),

	singles(8, 1, 1, 3),
	singles(8, 2, 2, 4),
	singles(8, 3, 6, 9),
	singles(8, 4, 7, 8),

	singles(9, 1, 1, 2),
	singles(9, 2, 4, 9),
	singles(9, 3, 5, 8),
	singles(9, 4, 6, 7),
}

var swedishPairs10 = []Entry{
	singles(1, 1, 1, 10),
	singles(1, 2, 2, 9),
	singles(1, 3, 3, 8),
	singles(1, 4, 4, 7),
	singles(1, 5, 5, 6),

	singles(2, 1, 1, 9),
	singles(2, 2, 2, 7),
	singles(2, 3, 3, 6),
	singles(2, 4, 4, 5),
	singles(2, 5, 8, 10),

	singles(3, 1, 1, 8),
	singles(3, 2, 2, 5),
	singles(3, 3, 3, 4),
	singles(3, 4, 6, 10),
	singles(3, 5, 7, 9),

	singles(4, 1, 1, 7),
	singles(4, 2, 2, 3),
	singles(4, 3, 4, 10),
	singles(4, 4, 5, 9),
	singles(4, 5, 6, 8),

	singles(5, 1, 1, 6),
	singles(5, 2, 2, 10),
	singles(5, 3, 3, 9),
	singles(5, 4, 4, 8),
	singles(5, 5, 5, 7),

	singles(6, 1, 1, 5),
	singles(6, 2, 2, 8),
	singles(6, 3, 3, 7),
	singles(6, 4, 4, 6),
	singles(6, 5, 9, 10),

	singles(7, 1, 1, 4),
	singles(7, 2, 2, 6),
	singles(7, 3, 3, 5),
	singles(7, 4, 7, 10),
	singles(7, 5, 8, 9),

	singles(8, 1, 1, 3),
	singles(8, 2, 2, 4),
	singles(8, 3, 5, 10),
	singles(8, 4, 6, 9),
	singles(8, 5, 7, 8),

	singles(9, 1, 1, 2),
	singles(9, 2, 3, 10),
	singles(9, 3, 4, 9),
	singles(9, 4, 5, 8),
	singles(9, 5, 6, 7),
}
