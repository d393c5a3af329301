package utils

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hyangkk/timecounter/config"
)

// OIDCVerifier 按配置的签发者验证第三方 identityToken
type OIDCVerifier struct {
	Issuer   string
	ClientID string
	JWKSURL  string
}

var defaultVerifier OIDCVerifier

func init() {
	config, err := config.LoadConfig(".")
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	defaultVerifier = OIDCVerifier{
		Issuer:   config.OIDCIssuer,
		ClientID: config.OIDCClientID,
		JWKSURL:  config.OIDCJWKSURL,
	}
}

// VerifyIdentityToken 用配置中的签发者验证 identityToken 并返回用户标识和邮箱
func VerifyIdentityToken(tokenString string) (string, string, error) {
	return defaultVerifier.VerifyIdentityToken(tokenString)
}

// VerifyIdentityToken 验证 identityToken 的签名和 claims，返回用户标识和邮箱
func (v OIDCVerifier) VerifyIdentityToken(tokenString string) (string, string, error) {
	// 1. 解析 token 的头部，获取 kid 和 alg
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", "", fmt.Errorf("解析 token 失败: %v", err)
	}

	kid, ok := token.Header["kid"].(string)
	if !ok {
		return "", "", errors.New("token 缺少 kid")
	}
	alg, _ := token.Header["alg"].(string)

	// 2. 获取身份提供方的公钥
	publicKey, err := v.getProviderPublicKey(kid)
	if err != nil {
		return "", "", fmt.Errorf("获取公钥失败: %v", err)
	}

	// 3. 验证 token 的签名
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != alg {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("验证 token 签名失败: %v", err)
	}

	// 4. 验证 token 的 claims
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return "", "", errors.New("无效的 token")
	}

	// 检查 issuer
	if claims["iss"] != v.Issuer {
		return "", "", errors.New("无效的签发者")
	}

	// 检查 audience
	if claims["aud"] != v.ClientID {
		return "", "", errors.New("无效的受众")
	}

	// 检查过期时间
	exp, ok := claims["exp"].(float64)
	if !ok || time.Now().Unix() > int64(exp) {
		return "", "", errors.New("token 已过期")
	}

	// 5. 返回用户的唯一标识
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", "", errors.New("无法获取用户标识")
	}

	email, _ := claims["email"].(string)
	return sub, email, nil
}

// getProviderPublicKey 从身份提供方的 JWKS 端点获取公钥
func (v OIDCVerifier) getProviderPublicKey(kid string) (*rsa.PublicKey, error) {
	resp, err := http.Get(v.JWKSURL)
	if err != nil {
		return nil, fmt.Errorf("获取公钥失败: %v", err)
	}
	defer resp.Body.Close()

	var jwks struct {
		Keys []struct {
			Kid string `json:"kid"`
			Alg string `json:"alg"`
			Use string `json:"use"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, fmt.Errorf("解析公钥失败: %v", err)
	}

	// 查找匹配的 kid
	var key *rsa.PublicKey
	for _, k := range jwks.Keys {
		if k.Kid == kid {
			nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
			if err != nil {
				return nil, fmt.Errorf("解析公钥 n 失败: %v", err)
			}

			eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
			if err != nil {
				return nil, fmt.Errorf("解析公钥 e 失败: %v", err)
			}

			e := int(new(big.Int).SetBytes(eBytes).Int64())
			key = &rsa.PublicKey{
				N: new(big.Int).SetBytes(nBytes),
				E: e,
			}
			break
		}
	}

	if key == nil {
		return nil, errors.New("未找到匹配的公钥")
	}

	return key, nil
}
