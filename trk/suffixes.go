// Copyright 2023 The go-mtudict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trk

// Suffixes is the fixed English suffix table referenced by instruction bytes
// 0x80 and above. The container does not store these suffixes; the original
// application keeps them in its executable and splices them back in at read
// time. Entries are ordered by length group, 7-letter suffixes first.
var Suffixes = []string{
	// 7-letter
	"ability", "ibility", "iveness", "ization", "fulness",
	"ousness",
	// 6-letter
	"ectomy", "edness", "liness", "ically", "lessly",
	// 5-letter
	"ality", "alism", "antly", "arian", "ating",
	"ation", "ative", "atory", "berry", "board",
	"bound", "ering", "esque", "fully", "house",
	"ially", "iness", "ingly", "ional", "istic",
	"ition", "ively", "ivity", "light", "ology",
	"orium", "ously", "stone", "ually",
	// 4-letter
	"able", "ance", "ancy", "ally", "ated",
	"back", "ball", "band", "bing", "bird",
	"boat", "bone", "book", "cide", "cule",
	"ding", "down", "ence", "ency", "ener",
	"ette", "fold", "ging", "head", "hood",
	"ible", "ical", "icle", "ings", "ious",
	"itis", "izer", "land", "less", "like",
	"line", "ling", "logy", "make", "ment",
	"ming", "ness", "ning", "ntly", "osis",
	"over", "ping", "ring", "room", "ship",
	"side", "sing", "sman", "some", "ster",
	"tail", "time", "ting", "wise", "wood",
	"work", "wort",
	// 3-letter
	"acy", "ade", "age", "and", "ant",
	"ary", "ate", "ble", "boy", "dom",
	"end", "ent", "ery", "ese", "ess",
	"est", "eur", "ful", "ger", "ial",
	"ian", "ide", "ied", "ier", "ile",
	"ily", "ine", "ing", "ion", "ise",
	"ish", "ism", "ist", "ite", "ity",
	"ium", "ive", "ize", "kin", "ler",
	"let", "man", "med", "nce", "ned",
	"oid", "ome", "oon", "ory", "ous",
	"out", "per", "red", "rer", "sed",
	"ted", "ter", "tic", "ual", "ule",
	"ure", "way", "yer",
	// 2-letter
	"ae", "al", "an", "ar", "by",
	"ch", "cy", "ed", "el", "en",
	"er", "et", "ey", "fy", "ia",
	"ic", "ie", "in", "is", "ly",
	"nt", "on", "or", "ow", "ry",
	"st", "th", "to", "ty", "us",
}
