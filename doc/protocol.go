package doc

import "slices"

// protocol is the transition table of a node kind.
type protocol struct {
	next map[State]map[Event]State
	// events allowed in every live state without changing it
	always []Event
}

func newProtocol() *protocol {
	return &protocol{next: make(map[State]map[Event]State)}
}

func (p *protocol) on(ev Event, to State, from ...State) *protocol {
	for _, s := range from {
		m, ok := p.next[s]
		if !ok {
			m = make(map[Event]State)
			p.next[s] = m
		}
		m[ev] = to
	}
	return p
}

// stay allows events which do not change state.
func (p *protocol) stay(s State, evs ...Event) *protocol {
	for _, ev := range evs {
		p.on(ev, s, s)
	}
	return p
}

func (p *protocol) anytime(evs ...Event) *protocol {
	p.always = append(p.always, evs...)
	return p
}

func (p *protocol) closes(from ...State) *protocol {
	return p.on(EventClose, StateDead, from...)
}

func (p *protocol) transition(from State, ev Event) (State, bool) {
	if from == StateDead {
		return from, false
	}
	if slices.Contains(p.always, ev) {
		return from, true
	}
	to, ok := p.next[from][ev]
	return to, ok
}

// expected lists states event is allowed in, in declaration order of State.
func (p *protocol) expected(ev Event) []State {
	var states []State
	for _, name := range StateNames() {
		s := MustParseState(name)
		if s == StateDead {
			continue
		}
		if _, ok := p.transition(s, ev); ok {
			states = append(states, s)
		}
	}
	return states
}

var contentEvents = []Event{
	EventSection, EventParagraph, EventFigure, EventFigureSeries,
	EventTable, EventCode, EventEquation, EventList,
}

var protocols = map[Kind]*protocol{
	KindDocument: newProtocol().
		on(EventHeader, StateHeader, StateAlive).
		on(EventBody, StateBody, StateHeader).
		on(EventFooter, StateFooter, StateBody).
		closes(StateBody, StateFooter),

	KindHeader: newProtocol().
		on(EventTitle, StateTitled, StateAlive).
		stay(StateTitled, EventMeta).
		closes(StateTitled),

	KindBody: newProtocol().
		stay(StateAlive, contentEvents...).
		closes(StateAlive),

	KindFooter: newProtocol().
		stay(StateAlive, EventNote).
		on(EventBibliography, StatePopulated, StateAlive).
		stay(StatePopulated, EventNote).
		closes(StateAlive, StatePopulated),

	KindBibliography: newProtocol().
		on(EventEntry, StatePopulated, StateAlive, StatePopulated).
		closes(StatePopulated),

	KindSection: newProtocol().
		on(EventTitle, StateTitled, StateAlive).
		on(EventBody, StateContent, StateTitled).
		stay(StateContent, contentEvents...).
		anytime(EventDefineStyle).
		closes(StateContent),

	KindParagraph: newProtocol().
		on(EventRun, StatePopulated, StateAlive, StatePopulated).
		closes(StatePopulated),

	KindCell: newProtocol().
		stay(StateAlive, EventRun).
		closes(StateAlive),

	KindItem: newProtocol().
		stay(StateAlive, EventRun, EventList).
		closes(StateAlive),

	KindFigure: newProtocol().
		on(EventCaption, StateCaptioned, StateAlive).
		closes(StateCaptioned),

	KindSubfigure: newProtocol().
		on(EventCaption, StateCaptioned, StateAlive).
		closes(StateCaptioned),

	KindFigureSeries: newProtocol().
		on(EventSubfigure, StatePopulated, StateAlive, StatePopulated).
		on(EventCaption, StateCaptioned, StatePopulated).
		closes(StateCaptioned),

	KindTable: newProtocol().
		on(EventCaption, StateCaptioned, StateAlive).
		on(EventHeader, StateHeader, StateAlive, StateCaptioned).
		on(EventBody, StateBody, StateHeader).
		on(EventFooter, StateFooter, StateBody).
		anytime(EventDefineStyle).
		closes(StateFooter),

	KindTableSection: newProtocol().
		on(EventRow, StatePopulated, StateAlive, StatePopulated).
		stay(StatePopulated, EventCell).
		closes(StateAlive, StatePopulated),

	KindCode: newProtocol().
		on(EventCaption, StateCaptioned, StateAlive).
		on(EventLine, StatePopulated, StateAlive, StateCaptioned, StatePopulated).
		closes(StatePopulated),

	KindList: newProtocol().
		on(EventItem, StatePopulated, StateAlive, StatePopulated).
		closes(StatePopulated),

	KindEquation: newProtocol().
		stay(StateAlive, EventArgument).
		closes(StateAlive),

	KindMath: newProtocol().
		stay(StateAlive, EventArgument).
		closes(StateAlive),
}
