package mjlog

import "fmt"

// Log is a structured game record: the one-time meta events keyed by
// tag, and the ordered event list of every round.
type Log struct {
	Meta   map[string]Event
	Rounds [][]Event
}

// ParseLog decodes the raw nodes and groups them per round.
func ParseLog(nodes []Node) (*Log, error) {
	events, err := ParseNodes(nodes)
	if err != nil {
		return nil, err
	}
	return StructureEvents(events)
}

// StructureEvents splits a flat event sequence into meta and rounds.
// Every round starts with INIT; BYE and RESUME seen before the first
// INIT belong to meta.
func StructureEvents(events []Event) (*Log, error) {
	log := &Log{Meta: make(map[string]Event)}
	var round []Event
	for _, event := range events {
		switch event.(type) {
		case *Shuffle, *GameConfig, *Roster, *Taikyoku:
			log.Meta[event.Tag()] = event
		case *Init:
			if round != nil {
				log.Rounds = append(log.Rounds, round)
			}
			round = []Event{event}
		case *Bye, *Resume:
			if round != nil {
				round = append(round, event)
			} else {
				log.Meta[event.Tag()] = event
			}
		default:
			if round == nil {
				return nil, fmt.Errorf("%s event before the first INIT", event.Tag())
			}
			round = append(round, event)
		}
	}
	if round != nil {
		log.Rounds = append(log.Rounds, round)
	}
	if err := validateStructure(len(events), log); err != nil {
		return nil, err
	}
	return log, nil
}

// The grouping must account for every input event exactly once.
func validateStructure(total int, log *Log) error {
	count := len(log.Meta)
	for _, round := range log.Rounds {
		count += len(round)
	}
	if count != total {
		return fmt.Errorf("structured %d of %d events", count, total)
	}
	for i, round := range log.Rounds {
		if _, ok := round[0].(*Init); !ok {
			return fmt.Errorf("round %d must start with INIT; got %s", i, round[0].Tag())
		}
	}
	return nil
}
