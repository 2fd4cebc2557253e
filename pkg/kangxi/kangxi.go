// Package kangxi holds the fixed enumeration of the 214 traditional
// (Kangxi) radicals. The table is never mutated at runtime; callers that
// need per-radical state (such as member character lists) keep it in their
// own structures and treat this package as a read-only lookup.
package kangxi

// Radical describes one entry of the traditional radical numbering.
type Radical struct {
	Glyph   string
	Pinyin  string
	Meaning string
}

// Count is the number of radicals in the traditional numbering.
const Count = 214

// Table returns the radical enumeration keyed by ordinal (1-214).
// A fresh map is returned so callers cannot corrupt the canonical data.
func Table() map[int]Radical {
	t := make(map[int]Radical, Count)
	for n, r := range table {
		t[n] = r
	}
	return t
}

// Lookup returns the radical for the given ordinal.
func Lookup(ordinal int) (Radical, bool) {
	r, ok := table[ordinal]
	return r, ok
}

var table = map[int]Radical{
	1: {Glyph: "一", Pinyin: "yī", Meaning: "one"},
	2: {Glyph: "丨", Pinyin: "gǔn", Meaning: "line"},
	3: {Glyph: "丶", Pinyin: "zhǔ", Meaning: "dot"},
	4: {Glyph: "丿", Pinyin: "piě", Meaning: "slash"},
	5: {Glyph: "乙", Pinyin: "yǐ", Meaning: "second"},
	6: {Glyph: "亅", Pinyin: "jué", Meaning: "hook"},
	7: {Glyph: "二", Pinyin: "èr", Meaning: "two"},
	8: {Glyph: "亠", Pinyin: "tóu", Meaning: "lid"},
	9: {Glyph: "人", Pinyin: "rén", Meaning: "person"},
	10: {Glyph: "儿", Pinyin: "ér", Meaning: "legs"},
	11: {Glyph: "入", Pinyin: "rù", Meaning: "enter"},
	12: {Glyph: "八", Pinyin: "bā", Meaning: "eight"},
	13: {Glyph: "冂", Pinyin: "jiōng", Meaning: "down box"},
	14: {Glyph: "冖", Pinyin: "mì", Meaning: "cover"},
	15: {Glyph: "冫", Pinyin: "bīng", Meaning: "ice"},
	16: {Glyph: "几", Pinyin: "jī", Meaning: "table"},
	17: {Glyph: "凵", Pinyin: "kǎn", Meaning: "open box"},
	18: {Glyph: "刀", Pinyin: "dāo", Meaning: "knife"},
	19: {Glyph: "力", Pinyin: "lì", Meaning: "power"},
	20: {Glyph: "勹", Pinyin: "bāo", Meaning: "wrap"},
	21: {Glyph: "匕", Pinyin: "bǐ", Meaning: "spoon"},
	22: {Glyph: "匚", Pinyin: "fāng", Meaning: "box"},
	23: {Glyph: "匸", Pinyin: "xì", Meaning: "hiding"},
	24: {Glyph: "十", Pinyin: "shí", Meaning: "ten"},
	25: {Glyph: "卜", Pinyin: "bǔ", Meaning: "divination"},
	26: {Glyph: "卩", Pinyin: "jié", Meaning: "seal"},
	27: {Glyph: "厂", Pinyin: "hàn", Meaning: "cliff"},
	28: {Glyph: "厶", Pinyin: "sī", Meaning: "private"},
	29: {Glyph: "又", Pinyin: "yòu", Meaning: "again"},
	30: {Glyph: "口", Pinyin: "kǒu", Meaning: "mouth"},
	31: {Glyph: "囗", Pinyin: "wéi", Meaning: "enclosure"},
	32: {Glyph: "土", Pinyin: "tǔ", Meaning: "earth"},
	33: {Glyph: "士", Pinyin: "shì", Meaning: "scholar"},
	34: {Glyph: "夂", Pinyin: "zhǐ", Meaning: "go"},
	35: {Glyph: "夊", Pinyin: "suī", Meaning: "go slowly"},
	36: {Glyph: "夕", Pinyin: "xī", Meaning: "evening"},
	37: {Glyph: "大", Pinyin: "dà", Meaning: "big"},
	38: {Glyph: "女", Pinyin: "nǚ", Meaning: "woman"},
	39: {Glyph: "子", Pinyin: "zǐ", Meaning: "child"},
	40: {Glyph: "宀", Pinyin: "mián", Meaning: "roof"},
	41: {Glyph: "寸", Pinyin: "cùn", Meaning: "inch"},
	42: {Glyph: "小", Pinyin: "xiǎo", Meaning: "small"},
	43: {Glyph: "尢", Pinyin: "wāng", Meaning: "lame"},
	44: {Glyph: "尸", Pinyin: "shī", Meaning: "corpse"},
	45: {Glyph: "屮", Pinyin: "chè", Meaning: "sprout"},
	46: {Glyph: "山", Pinyin: "shān", Meaning: "mountain"},
	47: {Glyph: "巛", Pinyin: "chuān", Meaning: "river"},
	48: {Glyph: "工", Pinyin: "gōng", Meaning: "work"},
	49: {Glyph: "己", Pinyin: "jǐ", Meaning: "oneself"},
	50: {Glyph: "巾", Pinyin: "jīn", Meaning: "cloth"},
	51: {Glyph: "干", Pinyin: "gān", Meaning: "dry"},
	52: {Glyph: "幺", Pinyin: "yāo", Meaning: "tiny"},
	53: {Glyph: "广", Pinyin: "guǎng", Meaning: "shelter"},
	54: {Glyph: "廴", Pinyin: "yǐn", Meaning: "stride"},
	55: {Glyph: "廾", Pinyin: "gǒng", Meaning: "hands"},
	56: {Glyph: "弋", Pinyin: "yì", Meaning: "shoot"},
	57: {Glyph: "弓", Pinyin: "gōng", Meaning: "bow"},
	58: {Glyph: "彐", Pinyin: "jì", Meaning: "snout"},
	59: {Glyph: "彡", Pinyin: "shān", Meaning: "hair"},
	60: {Glyph: "彳", Pinyin: "chì", Meaning: "step"},
	61: {Glyph: "心", Pinyin: "xīn", Meaning: "heart"},
	62: {Glyph: "戈", Pinyin: "gē", Meaning: "halberd"},
	63: {Glyph: "戶", Pinyin: "hù", Meaning: "door"},
	64: {Glyph: "手", Pinyin: "shǒu", Meaning: "hand"},
	65: {Glyph: "支", Pinyin: "zhī", Meaning: "branch"},
	66: {Glyph: "攴", Pinyin: "pū", Meaning: "strike"},
	67: {Glyph: "文", Pinyin: "wén", Meaning: "script"},
	68: {Glyph: "斗", Pinyin: "dǒu", Meaning: "dipper"},
	69: {Glyph: "斤", Pinyin: "jīn", Meaning: "axe"},
	70: {Glyph: "方", Pinyin: "fāng", Meaning: "square"},
	71: {Glyph: "无", Pinyin: "wú", Meaning: "not"},
	72: {Glyph: "日", Pinyin: "rì", Meaning: "sun"},
	73: {Glyph: "曰", Pinyin: "yuē", Meaning: "say"},
	74: {Glyph: "月", Pinyin: "yuè", Meaning: "moon"},
	75: {Glyph: "木", Pinyin: "mù", Meaning: "tree"},
	76: {Glyph: "欠", Pinyin: "qiàn", Meaning: "lack"},
	77: {Glyph: "止", Pinyin: "zhǐ", Meaning: "stop"},
	78: {Glyph: "歹", Pinyin: "dǎi", Meaning: "death"},
	79: {Glyph: "殳", Pinyin: "shū", Meaning: "weapon"},
	80: {Glyph: "毋", Pinyin: "wú", Meaning: "do not"},
	81: {Glyph: "比", Pinyin: "bǐ", Meaning: "compare"},
	82: {Glyph: "毛", Pinyin: "máo", Meaning: "fur"},
	83: {Glyph: "氏", Pinyin: "shì", Meaning: "clan"},
	84: {Glyph: "气", Pinyin: "qì", Meaning: "steam"},
	85: {Glyph: "水", Pinyin: "shuǐ", Meaning: "water"},
	86: {Glyph: "火", Pinyin: "huǒ", Meaning: "fire"},
	87: {Glyph: "爪", Pinyin: "zhǎo", Meaning: "claw"},
	88: {Glyph: "父", Pinyin: "fù", Meaning: "father"},
	89: {Glyph: "爻", Pinyin: "yáo", Meaning: "lines"},
	90: {Glyph: "爿", Pinyin: "qiáng", Meaning: "half tree"},
	91: {Glyph: "片", Pinyin: "piàn", Meaning: "slice"},
	92: {Glyph: "牙", Pinyin: "yá", Meaning: "fang"},
	93: {Glyph: "牛", Pinyin: "niú", Meaning: "cow"},
	94: {Glyph: "犬", Pinyin: "quǎn", Meaning: "dog"},
	95: {Glyph: "玄", Pinyin: "xuán", Meaning: "dark"},
	96: {Glyph: "玉", Pinyin: "yù", Meaning: "jade"},
	97: {Glyph: "瓜", Pinyin: "guā", Meaning: "melon"},
	98: {Glyph: "瓦", Pinyin: "wǎ", Meaning: "tile"},
	99: {Glyph: "甘", Pinyin: "gān", Meaning: "sweet"},
	100: {Glyph: "生", Pinyin: "shēng", Meaning: "life"},
	101: {Glyph: "用", Pinyin: "yòng", Meaning: "use"},
	102: {Glyph: "田", Pinyin: "tián", Meaning: "field"},
	103: {Glyph: "疋", Pinyin: "pǐ", Meaning: "bolt of cloth"},
	104: {Glyph: "疒", Pinyin: "nè", Meaning: "illness"},
	105: {Glyph: "癶", Pinyin: "bō", Meaning: "footsteps"},
	106: {Glyph: "白", Pinyin: "bái", Meaning: "white"},
	107: {Glyph: "皮", Pinyin: "pí", Meaning: "skin"},
	108: {Glyph: "皿", Pinyin: "mǐn", Meaning: "dish"},
	109: {Glyph: "目", Pinyin: "mù", Meaning: "eye"},
	110: {Glyph: "矛", Pinyin: "máo", Meaning: "spear"},
	111: {Glyph: "矢", Pinyin: "shǐ", Meaning: "arrow"},
	112: {Glyph: "石", Pinyin: "shí", Meaning: "stone"},
	113: {Glyph: "示", Pinyin: "shì", Meaning: "spirit"},
	114: {Glyph: "禸", Pinyin: "róu", Meaning: "track"},
	115: {Glyph: "禾", Pinyin: "hé", Meaning: "grain"},
	116: {Glyph: "穴", Pinyin: "xué", Meaning: "cave"},
	117: {Glyph: "立", Pinyin: "lì", Meaning: "stand"},
	118: {Glyph: "竹", Pinyin: "zhú", Meaning: "bamboo"},
	119: {Glyph: "米", Pinyin: "mǐ", Meaning: "rice"},
	120: {Glyph: "糸", Pinyin: "mì", Meaning: "silk"},
	121: {Glyph: "缶", Pinyin: "fǒu", Meaning: "jar"},
	122: {Glyph: "网", Pinyin: "wǎng", Meaning: "net"},
	123: {Glyph: "羊", Pinyin: "yáng", Meaning: "sheep"},
	124: {Glyph: "羽", Pinyin: "yǔ", Meaning: "feather"},
	125: {Glyph: "老", Pinyin: "lǎo", Meaning: "old"},
	126: {Glyph: "而", Pinyin: "ér", Meaning: "and"},
	127: {Glyph: "耒", Pinyin: "lěi", Meaning: "plow"},
	128: {Glyph: "耳", Pinyin: "ěr", Meaning: "ear"},
	129: {Glyph: "聿", Pinyin: "yù", Meaning: "brush"},
	130: {Glyph: "肉", Pinyin: "ròu", Meaning: "meat"},
	131: {Glyph: "臣", Pinyin: "chén", Meaning: "minister"},
	132: {Glyph: "自", Pinyin: "zì", Meaning: "self"},
	133: {Glyph: "至", Pinyin: "zhì", Meaning: "arrive"},
	134: {Glyph: "臼", Pinyin: "jiù", Meaning: "mortar"},
	135: {Glyph: "舌", Pinyin: "shé", Meaning: "tongue"},
	136: {Glyph: "舛", Pinyin: "chuǎn", Meaning: "oppose"},
	137: {Glyph: "舟", Pinyin: "zhōu", Meaning: "boat"},
	138: {Glyph: "艮", Pinyin: "gèn", Meaning: "stop"},
	139: {Glyph: "色", Pinyin: "sè", Meaning: "color"},
	140: {Glyph: "艸", Pinyin: "cǎo", Meaning: "grass"},
	141: {Glyph: "虍", Pinyin: "hū", Meaning: "tiger"},
	142: {Glyph: "虫", Pinyin: "chóng", Meaning: "insect"},
	143: {Glyph: "血", Pinyin: "xuè", Meaning: "blood"},
	144: {Glyph: "行", Pinyin: "xíng", Meaning: "walk"},
	145: {Glyph: "衣", Pinyin: "yī", Meaning: "clothes"},
	146: {Glyph: "襾", Pinyin: "yà", Meaning: "west"},
	147: {Glyph: "見", Pinyin: "jiàn", Meaning: "see"},
	148: {Glyph: "角", Pinyin: "jiǎo", Meaning: "horn"},
	149: {Glyph: "言", Pinyin: "yán", Meaning: "speech"},
	150: {Glyph: "谷", Pinyin: "gǔ", Meaning: "valley"},
	151: {Glyph: "豆", Pinyin: "dòu", Meaning: "bean"},
	152: {Glyph: "豕", Pinyin: "shǐ", Meaning: "pig"},
	153: {Glyph: "豸", Pinyin: "zhì", Meaning: "badger"},
	154: {Glyph: "貝", Pinyin: "bèi", Meaning: "shell"},
	155: {Glyph: "赤", Pinyin: "chì", Meaning: "red"},
	156: {Glyph: "走", Pinyin: "zǒu", Meaning: "run"},
	157: {Glyph: "足", Pinyin: "zú", Meaning: "foot"},
	158: {Glyph: "身", Pinyin: "shēn", Meaning: "body"},
	159: {Glyph: "車", Pinyin: "chē", Meaning: "cart"},
	160: {Glyph: "辛", Pinyin: "xīn", Meaning: "bitter"},
	161: {Glyph: "辰", Pinyin: "chén", Meaning: "morning"},
	162: {Glyph: "辵", Pinyin: "chuò", Meaning: "walk"},
	163: {Glyph: "邑", Pinyin: "yì", Meaning: "city"},
	164: {Glyph: "酉", Pinyin: "yǒu", Meaning: "wine"},
	165: {Glyph: "釆", Pinyin: "biàn", Meaning: "distinguish"},
	166: {Glyph: "里", Pinyin: "lǐ", Meaning: "village"},
	167: {Glyph: "金", Pinyin: "jīn", Meaning: "gold"},
	168: {Glyph: "長", Pinyin: "cháng", Meaning: "long"},
	169: {Glyph: "門", Pinyin: "mén", Meaning: "gate"},
	170: {Glyph: "阜", Pinyin: "fù", Meaning: "mound"},
	171: {Glyph: "隶", Pinyin: "lì", Meaning: "slave"},
	172: {Glyph: "隹", Pinyin: "zhuī", Meaning: "bird"},
	173: {Glyph: "雨", Pinyin: "yǔ", Meaning: "rain"},
	174: {Glyph: "青", Pinyin: "qīng", Meaning: "blue"},
	175: {Glyph: "非", Pinyin: "fēi", Meaning: "wrong"},
	176: {Glyph: "面", Pinyin: "miàn", Meaning: "face"},
	177: {Glyph: "革", Pinyin: "gé", Meaning: "leather"},
	178: {Glyph: "韋", Pinyin: "wéi", Meaning: "tanned"},
	179: {Glyph: "韭", Pinyin: "jiǔ", Meaning: "leek"},
	180: {Glyph: "音", Pinyin: "yīn", Meaning: "sound"},
	181: {Glyph: "頁", Pinyin: "yè", Meaning: "leaf"},
	182: {Glyph: "風", Pinyin: "fēng", Meaning: "wind"},
	183: {Glyph: "飛", Pinyin: "fēi", Meaning: "fly"},
	184: {Glyph: "食", Pinyin: "shí", Meaning: "eat"},
	185: {Glyph: "首", Pinyin: "shǒu", Meaning: "head"},
	186: {Glyph: "香", Pinyin: "xiāng", Meaning: "fragrance"},
	187: {Glyph: "馬", Pinyin: "mǎ", Meaning: "horse"},
	188: {Glyph: "骨", Pinyin: "gǔ", Meaning: "bone"},
	189: {Glyph: "高", Pinyin: "gāo", Meaning: "tall"},
	190: {Glyph: "髟", Pinyin: "biāo", Meaning: "hair"},
	191: {Glyph: "鬥", Pinyin: "dòu", Meaning: "fight"},
	192: {Glyph: "鬯", Pinyin: "chàng", Meaning: "herbs"},
	193: {Glyph: "鬲", Pinyin: "lì", Meaning: "cauldron"},
	194: {Glyph: "鬼", Pinyin: "guǐ", Meaning: "ghost"},
	195: {Glyph: "魚", Pinyin: "yú", Meaning: "fish"},
	196: {Glyph: "鳥", Pinyin: "niǎo", Meaning: "bird"},
	197: {Glyph: "鹵", Pinyin: "lǔ", Meaning: "salt"},
	198: {Glyph: "鹿", Pinyin: "lù", Meaning: "deer"},
	199: {Glyph: "麥", Pinyin: "mài", Meaning: "wheat"},
	200: {Glyph: "麻", Pinyin: "má", Meaning: "hemp"},
	201: {Glyph: "黃", Pinyin: "huáng", Meaning: "yellow"},
	202: {Glyph: "黍", Pinyin: "shǔ", Meaning: "millet"},
	203: {Glyph: "黑", Pinyin: "hēi", Meaning: "black"},
	204: {Glyph: "黹", Pinyin: "zhǐ", Meaning: "embroidery"},
	205: {Glyph: "黽", Pinyin: "mǐn", Meaning: "frog"},
	206: {Glyph: "鼎", Pinyin: "dǐng", Meaning: "tripod"},
	207: {Glyph: "鼓", Pinyin: "gǔ", Meaning: "drum"},
	208: {Glyph: "鼠", Pinyin: "shǔ", Meaning: "rat"},
	209: {Glyph: "鼻", Pinyin: "bí", Meaning: "nose"},
	210: {Glyph: "齊", Pinyin: "qí", Meaning: "even"},
	211: {Glyph: "齒", Pinyin: "chǐ", Meaning: "tooth"},
	212: {Glyph: "龍", Pinyin: "lóng", Meaning: "dragon"},
	213: {Glyph: "龜", Pinyin: "guī", Meaning: "turtle"},
	214: {Glyph: "龠", Pinyin: "yuè", Meaning: "flute"},
}
