package filedb

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/maizecandy/seller-help/db/sqlc"
)

// Store 基于 JSON 文件的存储实现，与 Postgres 驱动共用同一套接口。
// 适用于无数据库的单机部署：商家与会话各一个文件，
// 每个风险记录连同证据单独一个文件，写入用临时文件加原子重命名。
type Store struct {
	dir string

	mu        sync.RWMutex
	merchants map[int64]db.Merchant
	sessions  map[string]db.Session // key: refresh token
	records   map[string]*riskFile  // key: fingerprint
	recordIDs map[int64]string      // record id -> fingerprint
	counters  counters

	fpMu    sync.Mutex
	fpLocks map[string]*sync.Mutex
}

type counters struct {
	NextMerchantID int64 `json:"next_merchant_id"`
	NextRecordID   int64 `json:"next_record_id"`
	NextEvidenceID int64 `json:"next_evidence_id"`
}

// riskFile 单个风险记录的落盘形态
type riskFile struct {
	Record   db.RiskRecord `json:"record"`
	Evidence []db.Evidence `json:"evidence"`
}

type merchantsFile struct {
	Counters  counters      `json:"counters"`
	Merchants []db.Merchant `json:"merchants"`
}

// NewStore 打开或初始化数据目录
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:       dir,
		merchants: make(map[int64]db.Merchant),
		sessions:  make(map[string]db.Session),
		records:   make(map[string]*riskFile),
		recordIDs: make(map[int64]string),
		counters:  counters{NextMerchantID: 1, NextRecordID: 1, NextEvidenceID: 1},
		fpLocks:   make(map[string]*sync.Mutex),
	}
	if err := os.MkdirAll(s.recordsDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) recordsDir() string {
	return filepath.Join(s.dir, "records")
}

func (s *Store) merchantsPath() string {
	return filepath.Join(s.dir, "merchants.json")
}

func (s *Store) sessionsPath() string {
	return filepath.Join(s.dir, "sessions.json")
}

func (s *Store) recordPath(fp string) string {
	// 指纹本身就是十六进制串，可直接做文件名
	return filepath.Join(s.recordsDir(), fp+".json")
}

func (s *Store) load() error {
	var mf merchantsFile
	ok, err := readJSON(s.merchantsPath(), &mf)
	if err != nil {
		return err
	}
	if ok {
		s.counters = mf.Counters
		for _, m := range mf.Merchants {
			s.merchants[m.ID] = m
		}
	}

	var sessions []db.Session
	if _, err := readJSON(s.sessionsPath(), &sessions); err != nil {
		return err
	}
	for _, sess := range sessions {
		s.sessions[sess.RefreshToken] = sess
	}

	entries, err := os.ReadDir(s.recordsDir())
	if err != nil {
		return fmt.Errorf("read records dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		fp := entry.Name()[:len(entry.Name())-len(".json")]
		if _, err := hex.DecodeString(fp); err != nil {
			continue
		}
		var rf riskFile
		if _, err := readJSON(s.recordPath(fp), &rf); err != nil {
			return err
		}
		s.records[fp] = &rf
		s.recordIDs[rf.Record.ID] = fp
	}

	// 计数器以实际数据为准重建：证据追加只写记录文件不刷计数器，
	// 重启后直接用落盘的计数器会发出已用过的 ID
	for id := range s.merchants {
		if id >= s.counters.NextMerchantID {
			s.counters.NextMerchantID = id + 1
		}
	}
	for _, rf := range s.records {
		if rf.Record.ID >= s.counters.NextRecordID {
			s.counters.NextRecordID = rf.Record.ID + 1
		}
		for _, ev := range rf.Evidence {
			if ev.ID >= s.counters.NextEvidenceID {
				s.counters.NextEvidenceID = ev.ID + 1
			}
		}
	}
	return nil
}

func readJSON(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}

// writeJSON 临时文件加重命名，避免写一半的文件被读到
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// fpLock 每个指纹一把互斥锁，同一买家的读改写串行执行
func (s *Store) fpLock(fp string) *sync.Mutex {
	s.fpMu.Lock()
	defer s.fpMu.Unlock()
	l, ok := s.fpLocks[fp]
	if !ok {
		l = &sync.Mutex{}
		s.fpLocks[fp] = l
	}
	return l
}

// Ping 数据目录可写即视为存活
func (s *Store) Ping(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

func (s *Store) persistMerchants() error {
	mf := merchantsFile{Counters: s.counters}
	for _, m := range s.merchants {
		mf.Merchants = append(mf.Merchants, m)
	}
	sort.Slice(mf.Merchants, func(i, j int) bool { return mf.Merchants[i].ID < mf.Merchants[j].ID })
	return writeJSON(s.merchantsPath(), mf)
}

func (s *Store) persistSessions() error {
	sessions := make([]db.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.Before(sessions[j].CreatedAt) })
	return writeJSON(s.sessionsPath(), sessions)
}

// ===== 商家 =====

func (s *Store) CreateMerchant(ctx context.Context, arg db.CreateMerchantParams) (db.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.merchants {
		if m.Phone == arg.Phone {
			return db.Merchant{}, db.ErrUniqueViolation
		}
	}

	now := time.Now()
	merchant := db.Merchant{
		ID:             s.counters.NextMerchantID,
		Phone:          arg.Phone,
		HashedPassword: arg.HashedPassword,
		ShopName:       arg.ShopName,
		ContactName:    arg.ContactName,
		TrustLevel:     1,
		Status:         "approved",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.counters.NextMerchantID++
	s.merchants[merchant.ID] = merchant

	if err := s.persistMerchants(); err != nil {
		delete(s.merchants, merchant.ID)
		return db.Merchant{}, err
	}
	return merchant, nil
}

func (s *Store) GetMerchant(ctx context.Context, id int64) (db.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	merchant, ok := s.merchants[id]
	if !ok {
		return db.Merchant{}, db.ErrRecordNotFound
	}
	return merchant, nil
}

func (s *Store) GetMerchantByPhone(ctx context.Context, phone string) (db.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.merchants {
		if m.Phone == phone {
			return m, nil
		}
	}
	return db.Merchant{}, db.ErrRecordNotFound
}

// GetMerchantForUpdate 文件驱动下锁由事务方法持有，这里只是普通读取
func (s *Store) GetMerchantForUpdate(ctx context.Context, id int64) (db.Merchant, error) {
	return s.GetMerchant(ctx, id)
}

func (s *Store) ListMerchants(ctx context.Context, arg db.ListMerchantsParams) ([]db.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]db.Merchant, 0, len(s.merchants))
	for _, m := range s.merchants {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	start := int(arg.Offset)
	if start >= len(all) {
		return []db.Merchant{}, nil
	}
	end := start + int(arg.Limit)
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *Store) CountMerchants(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.merchants)), nil
}

func (s *Store) UpdateMerchant(ctx context.Context, arg db.UpdateMerchantParams) (db.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateMerchantLocked(arg)
}

func (s *Store) updateMerchantLocked(arg db.UpdateMerchantParams) (db.Merchant, error) {
	merchant, ok := s.merchants[arg.ID]
	if !ok {
		return db.Merchant{}, db.ErrRecordNotFound
	}

	if arg.TrustLevel.Valid {
		merchant.TrustLevel = arg.TrustLevel.Int16
	}
	if arg.Status.Valid {
		merchant.Status = arg.Status.String
	}
	if arg.PluginAuthPassed.Valid {
		merchant.PluginAuthPassed = arg.PluginAuthPassed
	}
	if arg.PluginAuthReason.Valid {
		merchant.PluginAuthReason = arg.PluginAuthReason
	}
	if arg.RealnameStatus.Valid {
		merchant.RealnameStatus = arg.RealnameStatus
	}
	if arg.RealnameReason.Valid {
		merchant.RealnameReason = arg.RealnameReason
	}
	if arg.LegalPersonName.Valid {
		merchant.LegalPersonName = arg.LegalPersonName
	}
	if arg.CompanyName.Valid {
		merchant.CompanyName = arg.CompanyName
	}
	merchant.UpdatedAt = time.Now()

	s.merchants[merchant.ID] = merchant
	if err := s.persistMerchants(); err != nil {
		return db.Merchant{}, err
	}
	return merchant, nil
}

// ===== 会话 =====

func (s *Store) CreateSession(ctx context.Context, arg db.CreateSessionParams) (db.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := db.Session{
		ID:                    arg.ID,
		MerchantID:            arg.MerchantID,
		RefreshToken:          arg.RefreshToken,
		UserAgent:             arg.UserAgent,
		ClientIp:              arg.ClientIp,
		IsRevoked:             arg.IsRevoked,
		RefreshTokenExpiresAt: arg.RefreshTokenExpiresAt,
		CreatedAt:             time.Now(),
	}
	s.sessions[session.RefreshToken] = session

	if err := s.persistSessions(); err != nil {
		delete(s.sessions, session.RefreshToken)
		return db.Session{}, err
	}
	return session, nil
}

func (s *Store) GetSessionByRefreshToken(ctx context.Context, refreshToken string) (db.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[refreshToken]
	if !ok {
		return db.Session{}, db.ErrRecordNotFound
	}
	return session, nil
}

func (s *Store) RevokeMerchantSessions(ctx context.Context, merchantID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if sess.MerchantID == merchantID {
			sess.IsRevoked = true
			s.sessions[token] = sess
		}
	}
	return s.persistSessions()
}

// ===== 风险记录 =====

func (s *Store) CreateRiskRecord(ctx context.Context, arg db.CreateRiskRecordParams) (db.RiskRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createRiskRecordLocked(arg)
}

func (s *Store) createRiskRecordLocked(arg db.CreateRiskRecordParams) (db.RiskRecord, error) {
	if _, exists := s.records[arg.Fingerprint]; exists {
		return db.RiskRecord{}, db.ErrUniqueViolation
	}

	record := db.RiskRecord{
		ID:           s.counters.NextRecordID,
		Fingerprint:  arg.Fingerprint,
		BuyerName:    arg.BuyerName,
		Phone:        arg.Phone,
		PhoneExt:     arg.PhoneExt,
		Province:     arg.Province,
		City:         arg.City,
		District:     arg.District,
		Platform:     arg.Platform,
		RiskLevel:    "low",
		FirstSeenAt:  arg.FirstSeenAt,
		LastSeenAt:   arg.FirstSeenAt,
		LastScoredAt: arg.FirstSeenAt,
	}
	s.counters.NextRecordID++

	rf := &riskFile{Record: record, Evidence: []db.Evidence{}}
	s.records[record.Fingerprint] = rf
	s.recordIDs[record.ID] = record.Fingerprint

	if err := writeJSON(s.recordPath(record.Fingerprint), rf); err != nil {
		delete(s.records, record.Fingerprint)
		delete(s.recordIDs, record.ID)
		return db.RiskRecord{}, err
	}
	if err := s.persistMerchants(); err != nil { // 计数器随商家文件持久化
		return db.RiskRecord{}, err
	}
	return record, nil
}

func (s *Store) GetRiskRecordByFingerprint(ctx context.Context, fp string) (db.RiskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rf, ok := s.records[fp]
	if !ok {
		return db.RiskRecord{}, db.ErrRecordNotFound
	}
	return rf.Record, nil
}

// GetRiskRecordByFingerprintForUpdate 文件驱动下锁由事务方法持有
func (s *Store) GetRiskRecordByFingerprintForUpdate(ctx context.Context, fp string) (db.RiskRecord, error) {
	return s.GetRiskRecordByFingerprint(ctx, fp)
}

func (s *Store) GetRiskRecordForUpdate(ctx context.Context, id int64) (db.RiskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fp, ok := s.recordIDs[id]
	if !ok {
		return db.RiskRecord{}, db.ErrRecordNotFound
	}
	return s.records[fp].Record, nil
}

func (s *Store) SearchRiskRecords(ctx context.Context, arg db.SearchRiskRecordsParams) ([]db.RiskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []db.RiskRecord{}
	for _, rf := range s.records {
		r := rf.Record
		if arg.Phone != "" && (!r.Phone.Valid || r.Phone.String != arg.Phone) {
			continue
		}
		if arg.PhoneExt != "" && (!r.PhoneExt.Valid || r.PhoneExt.String != arg.PhoneExt) {
			continue
		}
		if arg.Province != "" && (!r.Province.Valid || r.Province.String != arg.Province) {
			continue
		}
		if arg.City != "" && (!r.City.Valid || r.City.String != arg.City) {
			continue
		}
		matched = append(matched, r)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].RiskScore > matched[j].RiskScore })
	if int32(len(matched)) > arg.Limit {
		matched = matched[:arg.Limit]
	}
	return matched, nil
}

func (s *Store) ListStaleRiskRecords(ctx context.Context, arg db.ListStaleRiskRecordsParams) ([]db.RiskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stale := []db.RiskRecord{}
	for _, rf := range s.records {
		if rf.Record.LastScoredAt.Before(arg.LastScoredAt) {
			stale = append(stale, rf.Record)
		}
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].LastScoredAt.Before(stale[j].LastScoredAt) })
	if int32(len(stale)) > arg.Limit {
		stale = stale[:arg.Limit]
	}
	return stale, nil
}

func (s *Store) UpdateRiskRecordScore(ctx context.Context, arg db.UpdateRiskRecordScoreParams) (db.RiskRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateRiskRecordScoreLocked(arg)
}

func (s *Store) updateRiskRecordScoreLocked(arg db.UpdateRiskRecordScoreParams) (db.RiskRecord, error) {
	fp, ok := s.recordIDs[arg.ID]
	if !ok {
		return db.RiskRecord{}, db.ErrRecordNotFound
	}
	rf := s.records[fp]
	rf.Record.ReportCount = arg.ReportCount
	rf.Record.RiskScore = arg.RiskScore
	rf.Record.RiskLevel = arg.RiskLevel
	rf.Record.LastSeenAt = arg.LastSeenAt
	rf.Record.LastScoredAt = arg.LastScoredAt

	if err := writeJSON(s.recordPath(fp), rf); err != nil {
		return db.RiskRecord{}, err
	}
	return rf.Record, nil
}

// ===== 证据 =====

func (s *Store) CreateEvidence(ctx context.Context, arg db.CreateEvidenceParams) (db.Evidence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createEvidenceLocked(arg)
}

func (s *Store) createEvidenceLocked(arg db.CreateEvidenceParams) (db.Evidence, error) {
	fp, ok := s.recordIDs[arg.RiskRecordID]
	if !ok {
		return db.Evidence{}, db.ErrRecordNotFound
	}
	rf := s.records[fp]

	refs := arg.EvidenceRefs
	if refs == nil {
		refs = []string{}
	}
	evidence := db.Evidence{
		ID:           s.counters.NextEvidenceID,
		RiskRecordID: arg.RiskRecordID,
		MerchantID:   arg.MerchantID,
		RiskType:     arg.RiskType,
		EvidenceKind: arg.EvidenceKind,
		Description:  arg.Description,
		EvidenceRefs: refs,
		Source:       arg.Source,
		CreatedAt:    time.Now(),
	}
	s.counters.NextEvidenceID++
	rf.Evidence = append(rf.Evidence, evidence)

	if err := writeJSON(s.recordPath(fp), rf); err != nil {
		rf.Evidence = rf.Evidence[:len(rf.Evidence)-1]
		return db.Evidence{}, err
	}
	return evidence, nil
}

func (s *Store) ListEvidenceByRiskRecord(ctx context.Context, riskRecordID int64) ([]db.Evidence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fp, ok := s.recordIDs[riskRecordID]
	if !ok {
		return []db.Evidence{}, nil
	}
	out := make([]db.Evidence, len(s.records[fp].Evidence))
	copy(out, s.records[fp].Evidence)
	return out, nil
}

// ===== 事务 =====

// AddEvidenceTx 按指纹互斥锁串行化的追加写，与 SQL 驱动语义一致
func (s *Store) AddEvidenceTx(ctx context.Context, arg db.AddEvidenceTxParams) (db.AddEvidenceTxResult, error) {
	lock := s.fpLock(arg.Fingerprint)
	lock.Lock()
	defer lock.Unlock()

	var result db.AddEvidenceTxResult

	s.mu.Lock()
	defer s.mu.Unlock()

	rf, ok := s.records[arg.Fingerprint]
	if !ok {
		_, err := s.createRiskRecordLocked(db.CreateRiskRecordParams{
			Fingerprint: arg.Fingerprint,
			BuyerName:   textOrNull(arg.BuyerName),
			Phone:       textOrNull(arg.Phone),
			PhoneExt:    textOrNull(arg.PhoneExt),
			Province:    textOrNull(arg.Province),
			City:        textOrNull(arg.City),
			District:    textOrNull(arg.District),
			Platform:    textOrNull(arg.Platform),
			FirstSeenAt: arg.Now,
		})
		if err != nil {
			return result, fmt.Errorf("create risk record: %w", err)
		}
		rf = s.records[arg.Fingerprint]
		result.RecordCreated = true
	}

	evidence, err := s.createEvidenceLocked(db.CreateEvidenceParams{
		RiskRecordID: rf.Record.ID,
		MerchantID:   arg.MerchantID,
		RiskType:     arg.RiskType,
		EvidenceKind: arg.EvidenceKind,
		Description:  textOrNull(arg.Description),
		EvidenceRefs: arg.EvidenceRefs,
		Source:       arg.Source,
	})
	if err != nil {
		return result, fmt.Errorf("create evidence: %w", err)
	}
	result.Evidence = evidence

	score, level := arg.Rescore(rf.Evidence, arg.Now)

	record, err := s.updateRiskRecordScoreLocked(db.UpdateRiskRecordScoreParams{
		ReportCount:  int32(len(rf.Evidence)),
		RiskScore:    score,
		RiskLevel:    level,
		LastSeenAt:   arg.Now,
		LastScoredAt: arg.Now,
		ID:           rf.Record.ID,
	})
	if err != nil {
		return result, fmt.Errorf("update risk record score: %w", err)
	}
	result.RiskRecord = record

	return result, nil
}

// RescoreRiskRecordTx 锁内按当前时间重算衰减分值
func (s *Store) RescoreRiskRecordTx(ctx context.Context, arg db.RescoreRiskRecordTxParams) (db.RiskRecord, error) {
	s.mu.Lock()
	fp, ok := s.recordIDs[arg.RiskRecordID]
	if !ok {
		s.mu.Unlock()
		return db.RiskRecord{}, db.ErrRecordNotFound
	}
	s.mu.Unlock()

	lock := s.fpLock(fp)
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	rf := s.records[fp]
	score, level := arg.Rescore(rf.Evidence, arg.Now)

	return s.updateRiskRecordScoreLocked(db.UpdateRiskRecordScoreParams{
		ReportCount:  rf.Record.ReportCount,
		RiskScore:    score,
		RiskLevel:    level,
		LastSeenAt:   rf.Record.LastSeenAt,
		LastScoredAt: arg.Now,
		ID:           rf.Record.ID,
	})
}

// UpdateMerchantTrustTx 全局锁内执行信任等级迁移
func (s *Store) UpdateMerchantTrustTx(ctx context.Context, arg db.UpdateMerchantTrustTxParams) (db.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merchant, ok := s.merchants[arg.MerchantID]
	if !ok {
		return db.Merchant{}, db.ErrRecordNotFound
	}

	update, err := arg.Decide(merchant)
	if err != nil {
		return db.Merchant{}, err
	}
	update.ID = merchant.ID

	return s.updateMerchantLocked(update)
}

func textOrNull(v string) pgtype.Text {
	if v == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: v, Valid: true}
}

var _ db.Store = (*Store)(nil)
