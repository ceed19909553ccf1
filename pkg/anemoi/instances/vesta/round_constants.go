package vesta

// roundConstantsC and roundConstantsD are the literal C/D additive round
// constants for this instance, transcribed (via a Montgomery-to-integer
// conversion) from the upstream round_constants.rs table rather than
// derived from a label. See DESIGN.md for the conversion and provenance.
var roundConstantsC = [][]string{
	{"37", "6358804368462925979483097825262617477201021956701720826716790735556949046608", "6615436703587117048554160146421842083754010013230396521873651869001761325007", "12406297797888782672110572126569949001839916938192580892515012956432683676093"},
	{"11489930737521637358829862584916803900519738581608206467536996788324645612160", "8832650527876548582164283496643145423571154134676219711072428058723715465881", "25411383123684284251740045453327107059882588673585611025961418296864272881754", "15381793320205425456534896190280095596620929989527032368049653736203577467434"},
	{"25780150944348178116491340768132562109337529605561386510659227423251197498948", "26025863443819193307989357426915926594543943052433302869773063727711761898087", "28781171449664503436084566593755291457095292096319206037531633884809229880702", "21359945173154869478823158639017624035026550560207416536658017308854863071430"},
	{"16190455802091683385720112205963394878589601744332587940194696091907743396181", "11217616125060075925948829609879229732222142541111979591362432905059374510749", "15112719411099718237909048830323603734902605980362072168979819448525139437021", "15904224812686282338946838743293785121370142163654151786317909137444699819354"},
	{"18287129998917524233465881906178892838499773242407793606606418527835701744358", "22205077621243440864516254272084243156763444664443741800212481171960531781445", "28160067225295976921742126126475523291712193518175263138734934317035769322577", "14061403815712850830005418464390949287696773079449820444083049911240613415024"},
	{"27416286675306236180149799612770455169021873336198381504003838502731628399608", "9343637636933650854011822676220559979980684204047263847973831918923290465835", "21562106052540138512772225959380723956731937128424424326254511731175137677087", "10503563116607362352277133827509552154891081730051410269515506296574275889768"},
	{"5182835888046644893122009229417132895820266617532544168524923316563586541234", "18855061341274355539227559234559321070159491277180687556335948720181496771068", "21900753489746035303916060842636777638763183826383331492737457930165054977991", "15986009413969903384396893055497067751042271836460119403483336103184473485432"},
	{"11512754461088875241131931963037448504237963208068894017497417048372443880811", "21300541602340190051087961470338709580241988523462841815630901652658575885017", "2973448016741176600388245229806521815600243472731534163807249893292118145769", "19567922022997203783023208165394504438374465127277953792952694834376313432643"},
	{"23592957017366786386341117454874154243610323084203325063616086374525727160231", "1861557354818296565540550653768640017627829038241199176835785222953658365839", "15582143530563530798698250166318271098805806554549193090008272160748386263627", "528287561813310968525600989071406843068383163859553225992524242358566770075"},
	{"18580046824144735501718712826914482674310961318032043211523849713341682693315", "25018723200592382097396350092170380924145529500391097789942387923085666751206", "27479520789774914937910089850357975980478067390557610095148114852261328693243", "28705838078938271454736947040574593213447432193122596658163032021744656655381"},
}

var roundConstantsD = [][]string{
	{"11579208923731619542357098500868790785345222592776658951871897099357345179276", "21305369426740699886283971234555398375047099780481421682215387870668634884201", "3897572446783822255377424800110007328668469333382196975627020004981739423845", "22671863961614365259029707206872694824623435335662468411300981082593063008384"},
	{"28391774725644266438646900879441352107894917889955122029301243808141506696727", "153828341216283170532350447419706780084132192084529796783632365901554260705", "28016153931271998996023249900671029726827004709307668089607136353303766885920", "2021972238992968725021224812066621878071348620625529117048229034430109756956"},
	{"28163615232083619562660777026205550373788519700873649146087657904281355275050", "2828661556771740262709822341240928008132731896806960029148451496102897384446", "16867562556865030546720169004647654181115518919006610174841535402462020576403", "22429766700884273969554631476524567336915836460212907739000518816688055000584"},
	{"8637786521237142217012698741354501948742247605089949902542293912650148446015", "7032302978751689121685191053694326914875643632872383457336730761556120218937", "22210999259039311589560547770706062227987545050436223012888631054283540354551", "7037912771825704214801461858118847228961083829104742315579577984990139022240"},
	{"18411845037916424385353285722299499510848382437683815071443270476835098385420", "25697148794788495380847432996628839941612909090722805168676033156714269080861", "13987709083759962738095696095415504423630039440826426105453257302657798883238", "12872476094705714026454858859945510997483678079419070475833972887043044209138"},
	{"9476785780848353255524305755604651157584477755504100513070381960842095056769", "23719515186350971149722849979650723044407200336297672140346818161181460729447", "18273554286876390108505644507206271368226834757046932216882268974301600201944", "20198441771472491328106422801949680144255038435992005225175863529881139648078"},
	{"9488766804727666572574324081948286990000764016998680208064926311412473821560", "26528348392501531583123648995514465276840843907649865499502651750784724709748", "11909611225892142647834541847987306192512917953224609034158931961636575177916", "18978297570644888108411244487462176882661065040619484009937410124836394918810"},
	{"18809371709254766882719850190491981566915389914497695543244868867197113159835", "3016492675723187201226908354045255792057213978953037865325310758844222874298", "24921014393701202762335075862252406301209963388477124571115915497132783292489", "25550896511157058469173162972282992538490187638399983885614217680004016864719"},
	{"10681705152751714609374340438599050727161850953960193070170585287273846307546", "21265683934078428008910294798089503577043268620942756466696726919849481119605", "17321840794742593542090385555034519005289627633622849978123984858512501278638", "15251415246521251092013606804402235327421263320251297179140836930303083018539"},
	{"2423309421379296792757767698539482224904123092094513292230035556087745932044", "12229341932373097752879179872219370587239546505456609774275273801586070648289", "25973732515803610749308057126974326954003522373936869057415514480023387799668", "11235457916166795790338038491633547801478889771878295305783288891293754047162"},
}
