package beatmap

import "testing"

type sectionTest struct {
	from     Section
	line     string
	expected Section
	header   bool
}

var sectionTests = []sectionTest{
	{SectionOther, "[TimingPoints]", SectionTimingPoints, true},
	{SectionTimingPoints, "0,500,4,2,0,100,1,0", SectionTimingPoints, false},
	{SectionTimingPoints, "", SectionTimingPoints, false},
	{SectionTimingPoints, "[Colours]", SectionOther, true},
	{SectionOther, "[HitObjects]", SectionHitObjects, true},
	{SectionHitObjects, "[Anything]", SectionOther, true},
	{SectionOther, "Version:Hard", SectionOther, false},
	{SectionOther, "[]", SectionOther, false},
}

func TestSectionNext(t *testing.T) {
	for _, test := range sectionTests {
		next, header := test.from.Next(test.line)
		if next != test.expected || header != test.header {
			t.Logf("%v + %q -> %v (%v), expected %v (%v)", test.from, test.line, next, header, test.expected, test.header)
			t.Fail()
		}
	}
}
