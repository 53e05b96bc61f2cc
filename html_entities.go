// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package gcide

// entityToHTML maps an Entity item's name to the named HTML entity an
// HTML-aware reader would render it with. Names with no specific HTML
// entity fall back to entityToUnicode.
var entityToHTML = map[string]string{
	"lt":      "&lt;",
	"gt":      "&gt;",
	"ae":      "&aelig;",
	"AE":      "&AElig;",
	"oe":      "&oelig;",
	"OE":      "&OElig;",
	"cced":    "&ccedil;",
	"aring":   "&aring;",
	"aacute":  "&aacute;",
	"eacute":  "&eacute;",
	"iacute":  "&iacute;",
	"oacute":  "&oacute;",
	"uacute":  "&uacute;",
	"Eacute":  "&Eacute;",
	"acir":    "&acirc;",
	"ecir":    "&ecirc;",
	"icir":    "&icirc;",
	"ocir":    "&ocirc;",
	"ucir":    "&ucirc;",
	"agrave":  "&agrave;",
	"egrave":  "&egrave;",
	"igrave":  "&igrave;",
	"ograve":  "&ograve;",
	"ugrave":  "&ugrave;",
	"aum":     "&auml;",
	"eum":     "&euml;",
	"ium":     "&iuml;",
	"oum":     "&ouml;",
	"uum":     "&uuml;",
	"atil":    "&atilde;",
	"ntil":    "&ntilde;",
	"frac12":  "&frac12;",
	"frac14":  "&frac14;",
	"deg":     "&deg;",
	"prime":   "&prime;",
	"dprime":  "&Prime;",
	"ldquo":   "&ldquo;",
	"rdquo":   "&rdquo;",
	"lsquo":   "&lsquo;",
	"rsquo":   "&rsquo;",
	"sect":    "&sect;",
	"pound":   "&pound;",
	"mdash":   "&mdash;",
	"edh":     "&eth;",
	"thorn":   "&thorn;",
	"divide":  "&divide;",
	"times":   "&times;",
	"rarr":    "&rarr;",
	"middot":  "&middot;",
	"root":    "&radic;",
	"alpha":   "&alpha;",
	"beta":    "&beta;",
	"gamma":   "&gamma;",
	"GAMMA":   "&Gamma;",
	"delta":   "&delta;",
	"DELTA":   "&Delta;",
	"epsilon": "&epsilon;",
	"zeta":    "&zeta;",
	"eta":     "&eta;",
	"theta":   "&theta;",
	"THETA":   "&Theta;",
	"iota":    "&iota;",
	"kappa":   "&kappa;",
	"lambda":  "&lambda;",
	"LAMBDA":  "&Lambda;",
	"mu":      "&mu;",
	"nu":      "&nu;",
	"xi":      "&xi;",
	"XI":      "&Xi;",
	"omicron": "&omicron;",
	"pi":      "&pi;",
	"PI":      "&Pi;",
	"rho":     "&rho;",
	"sigma":   "&sigma;",
	"sigmat":  "&sigmaf;",
	"SIGMA":   "&Sigma;",
	"tau":     "&tau;",
	"upsilon": "&upsilon;",
	"phi":     "&phi;",
	"PHI":     "&Phi;",
	"chi":     "&chi;",
	"psi":     "&psi;",
	"PSI":     "&Psi;",
	"omega":   "&omega;",
	"OMEGA":   "&Omega;",
	"acute":   "&acute;",
	"cflex":   "&circ;",
	"srtil":   "&tilde;",
}

// entityToUnicode maps an Entity item's name to its plain-Unicode
// rendering, used as the entityToHTML fallback. Names with no
// known mapping render as U+FFFD REPLACEMENT CHARACTER, matching the
// lenient, never-panic posture of the rest of the module.
var entityToUnicode = map[string]string{
	"lt":       "<",
	"gt":       ">",
	"ae":       "æ",
	"AE":       "Æ",
	"oe":       "œ",
	"OE":       "Œ",
	"cced":     "ç",
	"aring":    "å",
	"uring":    "ů",
	"aacute":   "á",
	"eacute":   "é",
	"iacute":   "í",
	"oacute":   "ó",
	"uacute":   "ú",
	"Eacute":   "É",
	"acir":     "â",
	"ecir":     "ê",
	"icir":     "î",
	"ocir":     "ô",
	"ucir":     "û",
	"agrave":   "à",
	"egrave":   "è",
	"igrave":   "ì",
	"ograve":   "ò",
	"ugrave":   "ù",
	"aum":      "ä",
	"eum":      "ë",
	"ium":      "ï",
	"oum":      "ö",
	"uum":      "ü",
	"atil":     "ã",
	"etil":     "ẽ",
	"ltil":     "l̃",
	"mtil":     "m̃",
	"ntil":     "ñ",
	"amac":     "ā",
	"emac":     "ē",
	"imac":     "ī",
	"omac":     "ō",
	"umac":     "ū",
	"ymac":     "ȳ",
	"aemac":    "ǣ",
	"oomac":    "o͞o",
	"acr":      "ă",
	"ecr":      "ĕ",
	"icr":      "ĭ",
	"ocr":      "ŏ",
	"ucr":      "ŭ",
	"oocr":     "o͝o",
	"ocar":     "ǒ",
	"asl":      "ā̇",
	"esl":      "ē̇",
	"isl":      "ī̇",
	"osl":      "ō̇",
	"usl":      "ū̇",
	"adot":     "ȧ",
	"ndot":     "ṅ",
	"dsdot":    "ḍ",
	"nsdot":    "ṇ",
	"rsdot":    "ṛ",
	"tsdot":    "ṭ",
	"usdot":    "ụ",
	"add":      "a̤",
	"udd":      "ṳ",
	"nsm":      "ṉ",
	"frac12":   "½",
	"frac14":   "¼",
	"frac13":   "⅓",
	"frac23":   "⅔",
	"hand":     "☞",
	"deg":      "°",
	"prime":    "′",
	"dprime":   "″",
	"ldquo":    "“",
	"rdquo":    "”",
	"lsquo":    "‘",
	"rsquo":    "’",
	"sect":     "§",
	"sharp":    "♯",
	"flat":     "♭",
	"pound":    "£",
	"minus":    "−",
	"mdash":    "—",
	"th":       "t͟h",
	"par":      "‖",
	"cre":      "⌣",
	"edh":      "ð",
	"thorn":    "þ",
	"yogh":     "ȝ",
	"divide":   "÷",
	"times":    "×",
	"rarr":     "→",
	"middot":   "·",
	"root":     "√",
	"cuberoot": "∛",
	"alpha":    "α",
	"beta":     "β",
	"gamma":    "γ",
	"GAMMA":    "Γ",
	"delta":    "δ",
	"DELTA":    "Δ",
	"epsilon":  "ε",
	"zeta":     "ζ",
	"eta":      "η",
	"theta":    "θ",
	"THETA":    "Θ",
	"iota":     "ι",
	"kappa":    "κ",
	"lambda":   "λ",
	"LAMBDA":   "Λ",
	"mu":       "μ",
	"nu":       "ν",
	"xi":       "ξ",
	"XI":       "Ξ",
	"omicron":  "ο",
	"pi":       "π",
	"PI":       "Π",
	"rho":      "ρ",
	"sigma":    "σ",
	"sigmat":   "ς",
	"SIGMA":    "Σ",
	"tau":      "τ",
	"upsilon":  "υ",
	"phi":      "φ",
	"PHI":      "Φ",
	"chi":      "χ",
	"psi":      "ψ",
	"PSI":      "Ψ",
	"omega":    "ω",
	"OMEGA":    "Ω",
	"acute":    "´",
	"grave":    "`",
	"star":     "*",
	"asterism": "⁂",
	"cflex":    "ˆ",
	"srtil":    "˜",
	"invbre":   " ̑",
	"bacc":     "ˈ",
	"lacc":     "ˌ",
	"sdiv":     "·",
	"tsup":     "ᵗ",
	"esup":     "ᵉ",
	"isub":     "ᵢ",
}

const replacementChar = "�"

// htmlEntityFor returns the HTML rendering of an Entity item's name,
// preferring a named HTML entity and falling back to the plain-Unicode
// table, then to U+FFFD for names this module does not recognize.
func htmlEntityFor(name string) string {
	if s, ok := entityToHTML[name]; ok {
		return s
	}
	return unicodeEntityFor(name)
}

// unicodeEntityFor returns the plain-Unicode rendering of an Entity
// item's name, or U+FFFD if the name is unrecognized.
func unicodeEntityFor(name string) string {
	if s, ok := entityToUnicode[name]; ok {
		return s
	}
	return replacementChar
}
