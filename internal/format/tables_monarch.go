package format

// Matchup tables for the Monarch of the Court formats. Every entry is
// doubles(round, court, partnerA1, partnerA2, partnerB1, partnerB2) in seeds.

var monarch5 = []Entry{
	doubles(1, 1, 1, 5, 2, 4),
	doubles(2, 1, 1, 4, 3, 5),
	doubles(3, 1, 1, 2, 3, 4),
	doubles(4, 1, 2, 3, 4, 5),
	doubles(5, 1, 1, 3, 2, 5),
}

// Partners 4 and 6 never play together.
var monarch6 = []Entry{
	doubles(1, 1, 1, 4, 2, 3),
	doubles(2, 1, 3, 6, 4, 5),
	doubles(3, 1, 1, 6, 2, 5),
	doubles(4, 1, 1, 5, 2, 4),
	doubles(5, 1, 1, 3, 2, 6),
	doubles(6, 1, 3, 4, 5, 6),
	doubles(7, 1, 1, 2, 3, 5),
}

// Partners 1 and 2 never play together; seeds 1 and 2 get an automatic win.
var monarch7 = []Entry{
	doubles(1, 1, 4, 7, 5, 6),
	doubles(2, 1, 1, 6, 3, 4),
	doubles(3, 1, 2, 7, 3, 6),
	doubles(4, 1, 1, 7, 3, 5),
	doubles(5, 1, 1, 5, 2, 4),
	doubles(6, 1, 3, 7, 4, 6),
	doubles(7, 1, 1, 3, 2, 5),
	doubles(8, 1, 1, 4, 2, 3),
	doubles(9, 1, 4, 5, 6, 7),
	doubles(10, 1, 2, 6, 5, 7),
}

// Cade Loving's 8-player schedule.
var monarch8 = []Entry{
	doubles(1, 1, 1, 3, 6, 8),
	doubles(1, 2, 2, 4, 5, 7),

	doubles(2, 1, 1, 6, 4, 7),
	doubles(2, 2, 3, 8, 2, 5),

	doubles(3, 1, 1, 2, 7, 8),
	doubles(3, 2, 3, 4, 5, 6),

	doubles(4, 1, 1, 5, 2, 6),
	doubles(4, 2, 4, 8, 3, 7),

	doubles(5, 1, 1, 8, 4, 5),
	doubles(5, 2, 2, 7, 3, 6),

	doubles(6, 1, 1, 7, 3, 5),
	doubles(6, 2, 4, 6, 2, 8),

	doubles(7, 1, 1, 4, 2, 3),
	doubles(7, 2, 6, 7, 5, 8),
}

// Rounds 1 and 10 are single games.
var monarch9 = []Entry{
	doubles(1, 1, 1, 9, 3, 7),

	doubles(2, 1, 3, 6, 4, 5),
	doubles(2, 2, 1, 8, 2, 7),

	doubles(3, 1, 3, 8, 5, 6),
	doubles(3, 2, 2, 9, 4, 7),

	doubles(4, 1, 4, 9, 5, 8),
	doubles(4, 2, 1, 7, 2, 6),

	doubles(5, 1, 1, 4, 2, 3),
	doubles(5, 2, 5, 9, 6, 8),

	doubles(6, 1, 3, 9, 5, 7),
	doubles(6, 2, 2, 8, 4, 6),

	doubles(7, 1, 1, 6, 2, 5),
	doubles(7, 2, 4, 8, 7, 9),

	doubles(8, 1, 1, 5, 3, 4),
	doubles(8, 2, 6, 9, 7, 8),

	doubles(9, 1, 1, 3, 2, 4),
	doubles(9, 2, 6, 7, 8, 9),

	doubles(10, 1, 1, 2, 3, 5),
}

var monarch10 = []Entry{
	doubles(1, 1, 3, 7, 4, 6),
	doubles(1, 2, 5, 10, 8, 9),

	doubles(2, 1, 1, 8, 3, 6),
	doubles(2, 2, 2, 7, 4, 5),

	doubles(3, 1, 4, 10, 5, 9),
	doubles(3, 2, 2, 6, 3, 8),

	doubles(4, 1, 6, 10, 7, 9),
	doubles(4, 2, 1, 5, 2, 4),

	doubles(5, 1, 4, 8, 5, 7),
	doubles(5, 2, 2, 10, 3, 9),

	doubles(6, 1, 1, 9, 2, 8),
	doubles(6, 2, 3, 10, 6, 7),

	doubles(7, 1, 1, 10, 5, 6),
	doubles(7, 2, 2, 9, 4, 7),

	doubles(8, 1, 1, 7, 3, 5),
	doubles(8, 2, 6, 9, 8, 10),

	doubles(9, 1, 1, 6, 3, 4),
	doubles(9, 2, 5, 8, 7, 10),

	doubles(10, 1, 1, 4, 2, 3),
	doubles(10, 2, 7, 8, 9, 10),

	doubles(11, 1, 4, 9, 6, 8),
	doubles(11, 2, 1, 3, 2, 5),
}

var monarch11 = []Entry{
	doubles(1, 1, 7, 11, 8, 10),
	doubles(1, 2, 1, 4, 2, 3),

	doubles(2, 1, 5, 11, 6, 10),
	doubles(2, 2, 2, 9, 4, 7),

	doubles(3, 1, 1, 10, 3, 8),
	doubles(3, 2, 4, 9, 6, 7),

	doubles(4, 1, 3, 10, 5, 8),
	doubles(4, 2, 6, 11, 7, 9),

	doubles(5, 1, 3, 11, 5, 9),
	doubles(5, 2, 2, 8, 4, 6),

	doubles(6, 1, 1, 6, 2, 5),
	doubles(6, 2, 3, 9, 4, 8),

	doubles(7, 1, 2, 10, 5, 7),
	doubles(7, 2, 1, 8, 3, 6),

	doubles(8, 1, 8, 11, 9, 10),
	doubles(8, 2, 1, 7, 4, 5),

	doubles(9, 1, 4, 11, 5, 10),
	doubles(9, 2, 1, 9, 2, 7),

	doubles(10, 1, 2, 6, 3, 5),
	doubles(10, 2, 1, 11, 4, 10),

	doubles(11, 1, 2, 11, 6, 8),
	doubles(11, 2, 1, 5, 3, 4),

	doubles(12, 1, 3, 7, 5, 6),
	doubles(12, 2, 8, 9, 10, 11),

	doubles(13, 1, 6, 9, 7, 8),
	doubles(13, 2, 1, 3, 2, 4),

	doubles(14, 1, 7, 10, 9, 11),
}

var monarch12 = []Entry{
	doubles(1, 1, 2, 7, 4, 5),
	doubles(1, 2, 6, 12, 8, 10),
	doubles(1, 3, 1, 9, 3, 11),

	doubles(2, 1, 1, 10, 4, 7),
	doubles(2, 2, 8, 12, 9, 11),
	doubles(2, 3, 2, 6, 3, 5),

	doubles(3, 1, 1, 12, 6, 7),
	doubles(3, 2, 2, 11, 5, 8),
	doubles(3, 3, 3, 10, 4, 9),

	doubles(4, 1, 3, 12, 4, 11),
	doubles(4, 2, 5, 10, 7, 8),
	doubles(4, 3, 1, 6, 2, 9),

	doubles(5, 1, 1, 11, 5, 7),
	doubles(5, 2, 2, 12, 4, 10),
	doubles(5, 3, 3, 9, 6, 8),

	doubles(6, 1, 5, 12, 7, 10),
	doubles(6, 2, 6, 11, 8, 9),
	doubles(6, 3, 1, 4, 2, 3),

	doubles(7, 1, 1, 8, 3, 6),
	doubles(7, 2, 4, 12, 5, 11),
	doubles(7, 3, 2, 10, 7, 9),

	doubles(8, 1, 3, 8, 5, 6),
	doubles(8, 2, 1, 7, 2, 4),
	doubles(8, 3, 9, 10, 11, 12),

	doubles(9, 1, 9, 12, 10, 11),
	doubles(9, 2, 2, 8, 3, 7),
	doubles(9, 3, 1, 5, 4, 6),

	doubles(10, 1, 7, 12, 8, 11),
	doubles(10, 2, 5, 9, 6, 10),
	doubles(10, 3, 1, 2, 3, 4),

	doubles(11, 1, 4, 8, 6, 9),
	doubles(11, 2, 7, 11, 10, 12),
	doubles(11, 3, 1, 3, 2, 5),
}

var monarch13 = []Entry{
	doubles(1, 1, 5, 13, 7, 11),
	doubles(1, 2, 1, 10, 2, 9),
	doubles(1, 3, 3, 12, 6, 8),

	doubles(2, 1, 2, 13, 4, 11),
	doubles(2, 2, 6, 12, 8, 10),
	doubles(2, 3, 1, 9, 3, 7),

	doubles(3, 1, 1, 5, 2, 4),
	doubles(3, 2, 3, 13, 7, 9),
	doubles(3, 3, 8, 12, 10, 11),

	doubles(4, 1, 5, 12, 6, 11),
	doubles(4, 2, 3, 9, 4, 8),
	doubles(4, 3, 1, 7, 2, 10),

	doubles(5, 1, 2, 5, 3, 4),
	doubles(5, 2, 6, 13, 8, 11),
	doubles(5, 3, 7, 12, 9, 10),

	doubles(6, 1, 1, 13, 5, 9),
	doubles(6, 2, 4, 12, 6, 10),
	doubles(6, 3, 2, 11, 7, 8),

	doubles(7, 1, 4, 13, 7, 10),
	doubles(7, 2, 1, 8, 3, 6),
	doubles(7, 3, 2, 12, 5, 11),

	doubles(8, 1, 3, 10, 6, 7),
	doubles(8, 2, 1, 12, 4, 9),
	doubles(8, 3, 5, 8, 11, 13),

	doubles(9, 1, 8, 13, 9, 12),
	doubles(9, 2, 2, 6, 3, 5),
	doubles(9, 3, 1, 11, 4, 7),

	doubles(10, 1, 1, 4, 2, 3),
	doubles(10, 2, 5, 10, 6, 9),
	doubles(10, 3, 7, 13, 11, 12),

	doubles(11, 1, 9, 11, 10, 13),
	doubles(11, 2, 2, 7, 4, 5),
	doubles(11, 3, 1, 6, 3, 8),

	doubles(12, 1, 2, 8, 5, 7),
	doubles(12, 2, 1, 3, 4, 6),
	doubles(12, 3, 9, 13, 10, 12),

	doubles(13, 1, 3, 11, 8, 9),
	doubles(13, 2, 1, 2, 5, 6),
	doubles(13, 3, 4, 10, 12, 13),
}

var monarch14 = []Entry{
	doubles(1, 1, 4, 11, 5, 10),
	doubles(1, 2, 3, 13, 7, 9),
	doubles(1, 3, 6, 14, 8, 12),

	doubles(2, 1, 9, 12, 10, 11),
	doubles(2, 2, 4, 7, 5, 6),
	doubles(2, 3, 1, 14, 2, 13),

	doubles(3, 1, 3, 14, 8, 9),
	doubles(3, 2, 5, 13, 7, 11),
	doubles(3, 3, 1, 12, 4, 10),

	doubles(4, 1, 2, 7, 3, 6),
	doubles(4, 2, 4, 9, 5, 8),
	doubles(4, 3, 11, 14, 12, 13),

	doubles(5, 1, 2, 10, 4, 8),
	doubles(5, 2, 3, 12, 6, 9),
	doubles(5, 3, 1, 11, 5, 7),

	doubles(6, 1, 2, 14, 6, 10),
	doubles(6, 2, 1, 9, 3, 7),
	doubles(6, 3, 8, 13, 11, 12),

	doubles(7, 1, 8, 14, 10, 12),
	doubles(7, 2, 1, 7, 3, 5),
	doubles(7, 3, 4, 13, 6, 11),

	doubles(8, 1, 2, 8, 4, 6),
	doubles(8, 2, 1, 13, 3, 11),
	doubles(8, 3, 5, 14, 9, 10),

	doubles(9, 1, 2, 5, 3, 4),
	doubles(9, 2, 6, 12, 8, 10),
	doubles(9, 3, 7, 14, 9, 13),

	doubles(10, 1, 1, 4, 2, 3),
	doubles(10, 2, 6, 13, 8, 11),
	doubles(10, 3, 5, 12, 7, 10),

	doubles(11, 1, 1, 10, 3, 8),
	doubles(11, 2, 2, 11, 6, 7),
	doubles(11, 3, 4, 14, 5, 9),

	doubles(12, 1, 9, 14, 11, 13),
	doubles(12, 2, 2, 12, 7, 8),
	doubles(12, 3, 1, 6, 4, 5),

	doubles(13, 1, 1, 5, 2, 4),
	doubles(13, 2, 10, 13, 12, 14),
	doubles(13, 3, 3, 9, 6, 8),

	doubles(14, 1, 9, 11, 10, 14),
	doubles(14, 2, 4, 12, 7, 13),
	doubles(14, 3, 1, 3, 2, 6),

	doubles(15, 1, 2, 9, 3, 10),
	doubles(15, 2, 1, 8, 5, 11),
	doubles(15, 3, 7, 12, 13, 14),
}

// The first round is a single match.
var monarch15 = []Entry{
	doubles(1, 1, 6, 15, 8, 13),

	doubles(2, 1, 4, 14, 7, 11),
	doubles(2, 2, 2, 12, 5, 9),
	doubles(2, 3, 3, 15, 8, 10),

	doubles(3, 1, 3, 14, 4, 13),
	doubles(3, 2, 5, 11, 6, 10),
	doubles(3, 3, 1, 15, 7, 9),

	doubles(4, 1, 3, 12, 4, 11),
	doubles(4, 2, 2, 9, 5, 6),
	doubles(4, 3, 8, 15, 10, 13),

	doubles(5, 1, 5, 14, 7, 12),
	doubles(5, 2, 1, 9, 4, 6),
	doubles(5, 3, 2, 10, 3, 8),

	doubles(6, 1, 7, 14, 9, 12),
	doubles(6, 2, 3, 11, 6, 8),
	doubles(6, 3, 1, 5, 2, 4),

	doubles(7, 1, 10, 14, 11, 13),
	doubles(7, 2, 2, 15, 8, 9),
	doubles(7, 3, 1, 12, 6, 7),

	doubles(8, 1, 3, 13, 4, 12),
	doubles(8, 2, 7, 15, 8, 14),
	doubles(8, 3, 1, 6, 2, 5),

	doubles(9, 1, 1, 13, 4, 10),
	doubles(9, 2, 5, 12, 6, 11),
	doubles(9, 3, 2, 8, 3, 7),

	doubles(10, 1, 10, 15, 11, 14),
	doubles(10, 2, 3, 9, 5, 7),
	doubles(10, 3, 6, 13, 8, 12),

	doubles(11, 1, 4, 15, 9, 10),
	doubles(11, 2, 2, 11, 5, 8),
	doubles(11, 3, 6, 14, 7, 13),

	doubles(12, 1, 1, 14, 5, 10),
	doubles(12, 2, 9, 13, 11, 12),
	doubles(12, 3, 2, 7, 3, 6),

	doubles(13, 1, 1, 11, 4, 8),
	doubles(13, 2, 12, 15, 13, 14),
	doubles(13, 3, 3, 10, 6, 9),

	doubles(14, 1, 11, 15, 12, 14),
	doubles(14, 2, 1, 4, 2, 3),
	doubles(14, 3, 5, 13, 7, 10),

	doubles(15, 1, 1, 7, 3, 5),
	doubles(15, 2, 2, 13, 4, 9),
	doubles(15, 3, 10, 12, 14, 15),

	doubles(16, 1, 1, 8, 4, 5),
	doubles(16, 2, 9, 15, 12, 13),
	doubles(16, 3, 2, 14, 10, 11),

	doubles(17, 1, 5, 15, 9, 11),
	doubles(17, 2, 2, 6, 3, 4),
	doubles(17, 3, 1, 10, 7, 8),

	doubles(18, 1, 6, 12, 8, 11),
	doubles(18, 2, 1, 3, 4, 7),
	doubles(18, 3, 9, 14, 13, 15),
}

// Round 10 is a single match.
var monarch16 = []Entry{
	doubles(1, 1, 1, 13, 3, 11),
	doubles(1, 2, 7, 16, 8, 15),
	doubles(1, 3, 4, 14, 6, 12),
	doubles(1, 4, 2, 9, 5, 10),

	doubles(2, 1, 1, 14, 3, 12),
	doubles(2, 2, 4, 15, 6, 13),
	doubles(2, 3, 2, 10, 5, 7),
	doubles(2, 4, 8, 16, 9, 11),

	doubles(3, 1, 4, 7, 5, 6),
	doubles(3, 2, 8, 14, 9, 13),
	doubles(3, 3, 1, 12, 3, 10),
	doubles(3, 4, 2, 15, 11, 16),

	doubles(4, 1, 5, 16, 7, 14),
	doubles(4, 2, 1, 8, 3, 6),
	doubles(4, 3, 2, 13, 4, 11),
	doubles(4, 4, 9, 15, 10, 12),

	doubles(5, 1, 3, 13, 6, 10),
	doubles(5, 2, 1, 5, 2, 4),
	doubles(5, 3, 7, 12, 8, 11),
	doubles(5, 4, 9, 14, 15, 16),

	doubles(6, 1, 12, 15, 13, 14),
	doubles(6, 2, 5, 11, 7, 9),
	doubles(6, 3, 3, 16, 8, 10),
	doubles(6, 4, 1, 4, 2, 6),

	doubles(7, 1, 5, 15, 7, 13),
	doubles(7, 2, 1, 9, 4, 6),
	doubles(7, 3, 2, 16, 3, 14),
	doubles(7, 4, 8, 12, 10, 11),

	doubles(8, 1, 2, 7, 4, 5),
	doubles(8, 2, 12, 16, 13, 15),
	doubles(8, 3, 1, 10, 3, 8),
	doubles(8, 4, 6, 9, 11, 14),

	doubles(9, 1, 4, 13, 8, 9),
	doubles(9, 2, 10, 16, 12, 14),
	doubles(9, 3, 3, 15, 7, 11),
	doubles(9, 4, 1, 6, 2, 5),

	doubles(10, 1, 2, 11, 4, 9),

	doubles(11, 1, 5, 8, 6, 7),
	doubles(11, 2, 1, 15, 2, 14),
	doubles(11, 3, 10, 13, 11, 12),
	doubles(11, 4, 3, 9, 4, 16),
}
