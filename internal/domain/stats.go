package domain

// AggregateStats derives summary statistics from a normalized flight set.
// Pure function, no I/O. Ranges cover only flights with strictly positive
// duration/price; empty inputs yield [0,0] ranges and empty sets.
func AggregateStats(itineraries []Itinerary) FilterStats {
	stats := EmptyFilterStats()

	var (
		durSet, priceSet bool
		seenAirline      = map[string]bool{}
		seenStops        = map[int]bool{}
	)

	for _, itin := range itineraries {
		if d := itin.TotalDurationMinutes; d > 0 {
			if !durSet || d < stats.DurationRange[0] {
				stats.DurationRange[0] = d
			}
			if !durSet || d > stats.DurationRange[1] {
				stats.DurationRange[1] = d
			}
			durSet = true
		}

		if p := itin.PriceAmount; p > 0 {
			if !priceSet || p < stats.PriceRange[0] {
				stats.PriceRange[0] = p
			}
			if !priceSet || p > stats.PriceRange[1] {
				stats.PriceRange[1] = p
			}
			priceSet = true
		}

		for _, leg := range itin.Legs {
			name := leg.AirlineName
			if name == "" || name == UnknownValue || seenAirline[name] {
				continue
			}
			seenAirline[name] = true
			stats.Airlines = append(stats.Airlines, name)
		}

		if !seenStops[itin.StopCount] {
			seenStops[itin.StopCount] = true
			stats.StopCounts = append(stats.StopCounts, itin.StopCount)
		}
	}

	return stats
}
