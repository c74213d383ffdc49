package judge_test

import (
	"testing"

	"github.com/ielts-companion/backend/internal/judge"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCheck(t *testing.T) {
	Convey("Given the answer judge", t, func() {
		Convey("When the answers match exactly", func() {
			res, err := judge.Check("contribute", "contribute")
			So(err, ShouldBeNil)
			So(res.IsCorrect, ShouldBeTrue)
			So(res.Similarity, ShouldEqual, 100)
		})

		Convey("When the answers differ only in case, whitespace, and punctuation", func() {
			res, err := judge.Check("Contribute!", "  contribute ")
			So(err, ShouldBeNil)
			So(res.IsCorrect, ShouldBeTrue)
			So(res.Similarity, ShouldEqual, 100)
			So(res.NormalizedUser, ShouldEqual, "contribute")
			So(res.NormalizedCorrect, ShouldEqual, "contribute")
		})

		Convey("When the answer has a small typo just below the threshold", func() {
			// distance("contirbution", "contribution") = 2, length 12
			// similarity = 10/12*100 = 83.33 < 85
			res, err := judge.Check("contirbution", "contribution")
			So(err, ShouldBeNil)
			So(res.IsCorrect, ShouldBeFalse)
			So(res.Similarity, ShouldEqual, 83.33)
		})

		Convey("When one answer contains the other with a healthy length ratio", func() {
			// ratio 10/14 >= 0.6, so containment accepts even though
			// similarity (71.43) is below the threshold
			res, err := judge.Check("the contribute", "contribute")
			So(err, ShouldBeNil)
			So(res.IsCorrect, ShouldBeTrue)
			So(res.Similarity, ShouldEqual, 71.43)
		})

		Convey("When containment holds but the length ratio is too low", func() {
			// "investigate" (11) inside "investigate something" (21):
			// ratio 11/21 < 0.6, similarity 11/21*100 = 52.38 < 85
			res, err := judge.Check("investigate", "investigate something")
			So(err, ShouldBeNil)
			So(res.IsCorrect, ShouldBeFalse)
			So(res.Similarity, ShouldEqual, 52.38)
		})

		Convey("When a single letter is contained in a long reference", func() {
			res, err := judge.Check("a", "a very long reference answer")
			So(err, ShouldBeNil)
			So(res.IsCorrect, ShouldBeFalse)
			So(res.Similarity, ShouldBeLessThan, 10)
		})

		Convey("When similarity lands exactly on the 85 threshold", func() {
			// 3 substitutions over 20 characters: (20-3)/20 = 85.00
			res, err := judge.Check("xxxdefghijklmnopqrst", "abcdefghijklmnopqrst")
			So(err, ShouldBeNil)
			So(res.Similarity, ShouldEqual, 85)
			So(res.IsCorrect, ShouldBeTrue)
		})

		Convey("When similarity lands just below the threshold", func() {
			// 2 substitutions over 12 characters: (12-2)/12 = 83.33
			res, err := judge.Check("xxcdefghijkl", "abcdefghijkl")
			So(err, ShouldBeNil)
			So(res.Similarity, ShouldEqual, 83.33)
			So(res.IsCorrect, ShouldBeFalse)
		})

		Convey("When both inputs normalize to the empty string", func() {
			_, err := judge.Check("!!!", "???")
			So(err, ShouldEqual, judge.ErrEmptyAnswer)
		})

		Convey("When only one input normalizes to the empty string", func() {
			_, err := judge.Check("...", "cat")
			So(err, ShouldEqual, judge.ErrEmptyAnswer)
		})

		Convey("The verdict is deterministic", func() {
			a, err1 := judge.Check("renewable energy", "renewable energy sources")
			b, err2 := judge.Check("renewable energy", "renewable energy sources")
			So(err1, ShouldBeNil)
			So(err2, ShouldBeNil)
			So(a, ShouldResemble, b)
		})
	})
}

func TestSimilarity(t *testing.T) {
	Convey("Similarity is symmetric", t, func() {
		pairs := [][2]string{
			{"kitten", "sitting"},
			{"contribute", "the contribute"},
			{"", "abc"},
			{"same", "same"},
		}
		for _, p := range pairs {
			So(judge.Similarity(p[0], p[1]), ShouldEqual, judge.Similarity(p[1], p[0]))
		}
	})

	Convey("Two empty strings are 100% similar", t, func() {
		So(judge.Similarity("", ""), ShouldEqual, 100)
	})

	Convey("An empty string against a non-empty one is 0% similar", t, func() {
		So(judge.Similarity("", "abcd"), ShouldEqual, 0)
	})
}

func TestDistance(t *testing.T) {
	Convey("Levenshtein distance matches known values", t, func() {
		So(judge.Distance("kitten", "sitting"), ShouldEqual, 3)
		So(judge.Distance("contirbution", "contribution"), ShouldEqual, 2)
		So(judge.Distance("", "abc"), ShouldEqual, 3)
		So(judge.Distance("abc", ""), ShouldEqual, 3)
		So(judge.Distance("same", "same"), ShouldEqual, 0)
		So(judge.Distance("flaw", "lawn"), ShouldEqual, 2)
	})
}

func TestNormalize(t *testing.T) {
	Convey("Normalize strips punctuation and collapses whitespace", t, func() {
		So(judge.Normalize("  Hello,   World! "), ShouldEqual, "hello world")
		So(judge.Normalize(`"it's" (fine); [really]`), ShouldEqual, "its fine really")
		So(judge.Normalize("!!!"), ShouldEqual, "")
		So(judge.Normalize("carbon\tfootprint\n"), ShouldEqual, "carbon footprint")
	})
}
