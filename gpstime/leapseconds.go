package gpstime

// leapSecondGPS lists the GPS timestamps at which a leap second was inserted
// into UTC. After the i-th entry, GPS-UTC = i+1 seconds. The table covers
// every leap second since the GPS epoch; none have been announced since
// 2017-01-01 and the table must be extended if one is.
var leapSecondGPS = [...]float64{
	46828800,   // 1981-07-01
	78364801,   // 1982-07-01
	109900802,  // 1983-07-01
	173059203,  // 1985-07-01
	252028804,  // 1988-01-01
	315187205,  // 1990-01-01
	346723206,  // 1991-01-01
	393984007,  // 1992-07-01
	425520008,  // 1993-07-01
	457056009,  // 1994-07-01
	504489610,  // 1996-01-01
	551750411,  // 1997-07-01
	599184012,  // 1999-01-01
	820108813,  // 2006-01-01
	914803214,  // 2009-01-01
	1025136015, // 2012-07-01
	1119744016, // 2015-07-01
	1167264017, // 2017-01-01
}

// leapSecondsBefore returns the GPS-UTC offset in seconds at the given GPS
// timestamp. Timestamps before the GPS epoch carry a zero offset.
func leapSecondsBefore(gpsSeconds float64) float64 {
	n := 0
	for _, leap := range leapSecondGPS {
		if gpsSeconds < leap {
			break
		}
		n++
	}
	return float64(n)
}
