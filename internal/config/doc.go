// Package config loads the YAML file describing one cin table build.
//
// # Schema Overview
//
//	version: "1"
//	engine:
//	  ename: combo-tailo
//	  cname: 多漢羅
//	  selkey: qwdfzxyv
//	  keyname_skip: qwdfzxyzv
//	sources:
//	  - ChhoeTaigiDatabase/ChhoeTaigi_KauiokpooTaigiSutian.csv
//	  - ChhoeTaigiDatabase/ChhoeTaigi_iTaigiHoataiTuichiautian.csv
//	columns:
//	  input: KipInput
//	  unicode: KipUnicode
//	  han: HanLoTaibunKip
//	  input_alt: KipInputOthers
//	  unicode_alt: KipUnicodeOthers
//	normalize_nfc: true
//	passes:
//	  single_word: true
//	  syllable_split: true
//	  concatenated_phrase: true
//	  alt_marker: true
//	  slash_alternative: true
//	  tone_normalization: true
//	foreign_markers: ["な"]
//	alt_markers: ["文", "白", "替", "俗"]
//	tone_digits: "234578"
//
// Every key is optional; omitted values take the defaults shown above.
package config
